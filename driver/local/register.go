package local

import condor2nav "github.com/flyasky/Condor2Nav"

func init() {
	condor2nav.RegisterBackend("local", func(cfg *condor2nav.Config) (condor2nav.Backend, error) {
		return New(), nil
	})
}
