// Copyright © 2025 TradeChain Project
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"github.com/ghodss/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tradechain-io/tradechain/internal/apiserver"
	"github.com/tradechain-io/tradechain/internal/catalog"
	"github.com/tradechain-io/tradechain/internal/collab"
	"github.com/tradechain-io/tradechain/internal/config"
	"github.com/tradechain-io/tradechain/internal/ethereum"
	"github.com/tradechain-io/tradechain/internal/events"
	"github.com/tradechain-io/tradechain/internal/i18n"
	"github.com/tradechain-io/tradechain/internal/log"
	"github.com/tradechain-io/tradechain/internal/orders"
	"github.com/tradechain-io/tradechain/internal/registry"
	"github.com/tradechain-io/tradechain/internal/sharedstorage/pinata"
	"github.com/tradechain-io/tradechain/internal/trade"
	"github.com/tradechain-io/tradechain/internal/wallet"
)

var cfgFile string

var sigs = make(chan os.Signal, 1)

var rootCmd = &cobra.Command{
	Use:   "tradechain",
	Short: "TradeChain trade dashboard backend",
	Long: "TradeChain connects a role-based B2B trade dashboard to its on-chain " +
		"contracts, through a host wallet and a contract gateway",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var showConfigCommand = &cobra.Command{
	Use:     "showconfig",
	Aliases: []string{"showconf"},
	Short:   "List out the configuration options",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Differs from the rest of the commands as it does not return an
		// error if the config file cannot be read - the defaults are the point
		_ = config.ReadConfig(cfgFile)
		b, err := yaml.Marshal(viper.AllSettings())
		if err != nil {
			return err
		}
		fmt.Print(string(b))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "file", "f", "", "config file")
	rootCmd.AddCommand(showConfigCommand)
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func run() error {

	// Read the configuration first of all
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", os.Getpid()))
	log.SetFormatting(log.Formatting{DisableColor: !config.GetBool(config.LogColor)})
	log.SetLevel(config.GetString(config.LogLevel))
	log.L(ctx).Infof("TradeChain backend")
	log.L(ctx).Infof("© Copyright 2025 TradeChain Project")

	// Deferred error return from reading config
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, cfgFile)
	}

	if debugPort := config.GetInt(config.DebugPort); debugPort > 0 {
		go func() {
			log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d: %s", debugPort, http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil))
		}()
	}

	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.L(ctx).Infof("Shutting down on %s", sig)
		cancel()
	}()

	return runServer(ctx)
}

func contractAddress(ctx context.Context, key config.RootKey) (string, error) {
	address := config.GetString(key)
	if address == "" {
		return "", i18n.NewError(ctx, i18n.MsgContractNotConfigured, string(key))
	}
	return address, nil
}

func runServer(ctx context.Context) error {

	eth := &ethereum.Ethereum{}
	blockchainPrefix := config.NewPluginConfig("blockchain")
	eth.InitPrefix(blockchainPrefix)
	if err := eth.Init(ctx, blockchainPrefix); err != nil {
		return err
	}
	log.L(ctx).Infof("Blockchain provider initialized: %s", eth.Name())

	pin := &pinata.Pinata{}
	storagePrefix := config.NewPluginConfig("sharedstorage")
	pin.InitPrefix(storagePrefix)
	if err := pin.Init(ctx, storagePrefix); err != nil {
		return err
	}
	log.L(ctx).Infof("Shared storage plugin initialized: %s", pin.Name())

	registryAddr, err := contractAddress(ctx, config.ContractsRegistry)
	if err != nil {
		return err
	}
	productsAddr, err := contractAddress(ctx, config.ContractsProducts)
	if err != nil {
		return err
	}
	ordersAddr, err := contractAddress(ctx, config.ContractsOrders)
	if err != nil {
		return err
	}
	collabAddr, err := contractAddress(ctx, config.ContractsCollab)
	if err != nil {
		return err
	}

	manager := trade.NewManager(
		wallet.NewConnector(eth, wallet.ChainFromConfig()),
		registry.NewRegistry(eth, registryAddr),
		catalog.NewCatalog(eth, pin, productsAddr),
		orders.NewOrders(eth, ordersAddr),
		collab.NewCollaborations(eth, collabAddr),
		pin,
	)

	var listener *events.Listener
	if config.GetBool(config.EventstreamEnabled) && eth.Capabilities().EventStreams {
		listener, err = events.NewListener(ctx, config.GetString(config.EventstreamTopic), eth.EventStreamConfig(), eth.GatewayClient())
		if err != nil {
			return err
		}
		defer listener.Close()
		log.L(ctx).Infof("Event stream listener started")
	}

	return apiserver.NewAPIServer(manager, listener).Serve(ctx)
}
