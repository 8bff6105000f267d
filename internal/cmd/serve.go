package cmd

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/inkfield/inkfield/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a gallery archive and render sketches on demand",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "127.0.0.1:8080", "Listen address (host:port)")
	serveCmd.Flags().String("gallery", "", "Gallery archive to browse (optional)")

	serveCmd.Flags().Int("width", 800, "Canvas width for on-demand renders")
	serveCmd.Flags().Int("height", 800, "Canvas height for on-demand renders")
	serveCmd.Flags().Int("max-concurrent-renders", runtime.NumCPU(), "Max concurrent on-demand renders (default: number of CPUs)")
	serveCmd.Flags().Duration("render-timeout", time.Minute, "Timeout per on-demand render")
	serveCmd.Flags().String("cache-control", "no-store", "Cache-Control header for served frames")
	serveCmd.Flags().String("png-compression", "default", "PNG compression (default, speed, best, none)")

	mustBind := func(key string, name string) {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(name)); err != nil {
			panic(fmt.Sprintf("failed to bind flag: %v", err))
		}
	}

	mustBind("serve.addr", "addr")
	mustBind("serve.gallery", "gallery")
	mustBind("serve.width", "width")
	mustBind("serve.height", "height")
	mustBind("serve.max_concurrent_renders", "max-concurrent-renders")
	mustBind("serve.render_timeout", "render-timeout")
	mustBind("serve.cache_control", "cache-control")
	mustBind("serve.png_compression", "png-compression")
}

func runServe(cmd *cobra.Command, args []string) error {
	if logger == nil {
		initLogging()
	}

	addr := viper.GetString("serve.addr")

	srv, err := server.New(server.Config{
		GalleryPath:          viper.GetString("serve.gallery"),
		Width:                viper.GetInt("serve.width"),
		Height:               viper.GetInt("serve.height"),
		MaxConcurrentRenders: viper.GetInt("serve.max_concurrent_renders"),
		RenderTimeout:        viper.GetDuration("serve.render_timeout"),
		CacheControl:         viper.GetString("serve.cache_control"),
		PNGCompression:       viper.GetString("serve.png_compression"),
	}, logger)
	if err != nil {
		return err
	}
	defer srv.Close() // nolint:errcheck

	logger.Info("server listening",
		"addr", addr,
		"gallery", viper.GetString("serve.gallery"),
		"max_concurrent_renders", viper.GetInt("serve.max_concurrent_renders"),
	)

	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler(), ReadHeaderTimeout: 5 * time.Second}
	return httpSrv.ListenAndServe()
}
