package main

import (
	"flag"
)

type AppFlags struct {
	SitesFile        string
	GlobalConfigFile string
	Mode             string
}

func ParseFlags() AppFlags {
	sitesFile := flag.String("file", "", "Path to the CSV file listing the monitored sites (overrides config file if set).")
	sitesFileAlias := flag.String("f", "", "Alias for -file")

	globalConfigFile := flag.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := flag.String("c", "", "Alias for -config")

	modeFlag := flag.String("mode", "", "Mode to run the tool: onetime or automated (overrides config file if set)")
	modeFlagAlias := flag.String("m", "", "Alias for -mode")

	flag.Parse()

	flags := AppFlags{}

	if *sitesFile != "" {
		flags.SitesFile = *sitesFile
	} else if *sitesFileAlias != "" {
		flags.SitesFile = *sitesFileAlias
	}

	if *globalConfigFile != "" {
		flags.GlobalConfigFile = *globalConfigFile
	} else if *globalConfigFileAlias != "" {
		flags.GlobalConfigFile = *globalConfigFileAlias
	}

	if *modeFlag != "" {
		flags.Mode = *modeFlag
	} else if *modeFlagAlias != "" {
		flags.Mode = *modeFlagAlias
	}

	return flags
}
