// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/33cn/rps/cmd/cli/commands"
	"github.com/33cn/rps/common/log"
	_ "github.com/33cn/rps/plugin"
	"github.com/33cn/rps/pluginmgr"
	_ "github.com/33cn/rps/system"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rps-cli",
	Short: "rock paper scissors client tools, every transaction is executed in a new block of the local state",
}

func init() {
	rootCmd.PersistentFlags().String("conf", "", "config file, the default config keeps state in ./datadir")
	rootCmd.PersistentFlags().Int64("blocktime", 0, "block time of the next block, 0 for now")

	rootCmd.AddCommand(
		commands.AccountCmd(),
		commands.BlockCmd(),
		commands.TxCmd(),
	)
	pluginmgr.AddCmd(rootCmd)
}

func main() {
	log.SetLogLevel("error")
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
