// Command hoshictl keeps a Hoshi session on disk and resolves media and navigation against it.
package main

import (
	"os"

	"github.com/hoshibmatchi/hoshi-client/internal/pkg/config"
	"github.com/hoshibmatchi/hoshi-client/internal/session/app/store"
	infrastore "github.com/hoshibmatchi/hoshi-client/internal/session/infra/store"
)

func main() {
	cmd := newRootCmd(dependencies{
		loadConfig: func() (config.Config, error) {
			return config.Load()
		},
		openTokenStore: func(cfg config.Session) (store.TokenStore, error) {
			ring, err := infrastore.OpenFileKeyring(cfg)
			if err != nil {
				return nil, err
			}
			return infrastore.NewKeyringStore(ring), nil
		},
		logOutput: os.Stderr,
	})

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
