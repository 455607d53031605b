package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tagpack/tagpack/pkg/api"
	"github.com/tagpack/tagpack/pkg/backend"
	"github.com/tagpack/tagpack/pkg/codec"
	"github.com/tagpack/tagpack/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the tagpack REST API server. The server encodes JSON documents
into tagpack payloads, decodes them back, and optionally caches encoded
payloads by content digest.

Configuration is read from --config (bootstrapped with a generated API
key on first run); flags override the file.

Examples:
  tagpack serve
  tagpack serve --config ./tagpack.yaml --port 9271`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				return
			}
		} else {
			cfg, err = config.BootstrapConfig(configPath)
			if err != nil {
				cmd.Printf("Error bootstrapping config: %v\n", err)
				return
			}
			cmd.Printf("Bootstrapped config at %s with a generated API key\n", configPath)
		}

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("cache-dir") {
			cfg.CacheDir, _ = cmd.Flags().GetString("cache-dir")
		}

		opts := codec.Options{
			WideIntegers:     cfg.Codec.WideIntegers,
			DoublePrecision:  cfg.Codec.DoublePrecision,
			Compression:      cfg.Codec.Compression,
			CompressionLevel: cfg.Codec.CompressionLevel,
		}

		var b backend.Backend
		switch cfg.Codec.Backend {
		case "", "auto":
			b = backend.Default()
		default:
			b = &backend.Reference{Options: opts}
		}

		serverConfig := api.ServerConfig{
			Bind:        cfg.Bind,
			Port:        cfg.Port,
			APIKey:      cfg.Security.APIKey,
			CacheDir:    cfg.CacheDir,
			Compression: cfg.Codec.Compression,
		}

		if err := api.StartServer(b, serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Config file path (default ~/.config/tagpack/config.yaml)")
	serveCmd.Flags().IntP("port", "p", 9270, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("cache-dir", "", "Payload cache directory (empty disables the cache)")
}
