// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"cogentcore.org/colour/logx"
)

var rootCmd = &cobra.Command{
	Use:   "colour",
	Short: "Colour science from the command line",
	Long: `Colour computes blackbody spectra, CIECAM02 appearance correlates,
and colour rendition charts from the command line.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .colour.toml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Bool("vv", false, "debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "errors only")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".colour")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("COLOUR")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()

	vv, _ := rootCmd.Flags().GetBool("vv")
	v, _ := rootCmd.Flags().GetBool("verbose")
	q, _ := rootCmd.Flags().GetBool("quiet")
	logx.UserLevel = logx.LevelFromFlags(vv, v, q)

	if noColor, _ := rootCmd.Flags().GetBool("no-color"); noColor || viper.GetBool("no-color") {
		disableColor()
	}
}
