/*
Copyright 2025 Hemolink Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hemolink/hemolink"
	"github.com/hemolink/hemolink/config"
)

// Hemolink represents the CLI application, encapsulating the root Cobra command.
type Hemolink struct {
	cmd *cobra.Command
}

// hemolinkInstance holds the client and its configuration, shared by
// every subcommand after preRun has initialized them.
type hemolinkInstance struct {
	client *hemolink.Hemolink
	cnf    *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun loads the configuration and initializes the API client before
// running any command.
func preRun(app *hemolinkInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		client, err := hemolink.NewHemolink()
		if err != nil {
			log.Fatal(err)
		}

		app.client = client
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the Hemolink client.
// It sets up the root command and the subcommands for the donation
// workflow: browsing centers, signing in, submitting an application,
// and reviewing the profile and records.
func NewCLI() *Hemolink {
	var configFile string
	h := &hemolinkInstance{}

	var rootCmd = &cobra.Command{
		Use:   "hemolink",
		Short: "Blood donation coordination client",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./hemolink.json", "Configuration file for the client")

	rootCmd.PersistentPreRunE = preRun(h, &configFile)

	rootCmd.AddCommand(hospitalCommands(h))
	rootCmd.AddCommand(donateCommands(h))
	rootCmd.AddCommand(authCommands(h))
	rootCmd.AddCommand(profileCommands(h))
	rootCmd.AddCommand(recordCommands(h))

	return &Hemolink{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Hemolink) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
