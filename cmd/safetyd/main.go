package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the daemon configuration. Values resolve in order of
// precedence: command line flags, then environment variables with the
// SAFETYD_ prefix, then the optional safetyd config file, then defaults.
type Config struct {
	NodeID          string
	Datadir         string
	Level           string
	Bind            string
	MetricsPort     uint
	ProfilerEnabled bool
	Timeout         time.Duration
	BootstrapPath   string
}

func parseConfig() Config {
	var conf Config
	pflag.StringVarP(&conf.NodeID, "nodeid", "n", "", "hex identity of this node")
	pflag.StringVarP(&conf.Datadir, "datadir", "d", "data", "directory to store the safety state")
	pflag.StringVarP(&conf.Level, "loglevel", "l", "info", "level for logging output")
	pflag.StringVarP(&conf.Bind, "bind", "b", "127.0.0.1:7435", "address to serve the safety service on")
	pflag.UintVar(&conf.MetricsPort, "metricport", 8080, "port for the metrics server")
	pflag.BoolVar(&conf.ProfilerEnabled, "profiler-enabled", false, "whether to enable the pprof profiler endpoint")
	pflag.DurationVarP(&conf.Timeout, "timeout", "t", 1*time.Minute, "how long to wait for a component to start or stop")
	pflag.StringVar(&conf.BootstrapPath, "bootstrap", "", "path to a root file to bootstrap the store from")
	pflag.Parse()

	viper.SetEnvPrefix("SAFETYD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	err := viper.BindPFlags(pflag.CommandLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not bind flags: %s\n", err)
		os.Exit(1)
	}

	viper.SetConfigName("safetyd")
	viper.AddConfigPath(".")
	err = viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "could not read config file: %s\n", err)
			os.Exit(1)
		}
	}

	conf.NodeID = viper.GetString("nodeid")
	conf.Datadir = viper.GetString("datadir")
	conf.Level = viper.GetString("loglevel")
	conf.Bind = viper.GetString("bind")
	conf.MetricsPort = viper.GetUint("metricport")
	conf.ProfilerEnabled = viper.GetBool("profiler-enabled")
	conf.Timeout = viper.GetDuration("timeout")
	conf.BootstrapPath = viper.GetString("bootstrap")

	return conf
}

func main() {
	node := NewSafetyNode(parseConfig())
	node.Run()
}
