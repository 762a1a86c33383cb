package memchan

import condor2nav "github.com/flyasky/Condor2Nav"

func init() {
	condor2nav.RegisterChannel("memory", func(cfg *condor2nav.Config) (condor2nav.Channel, error) {
		return New(), nil
	})
}
