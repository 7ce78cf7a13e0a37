package environ

import (
	"os"
	"strings"
)

// EnvGetter looks up variables of the launching process.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the live process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Snapshot is a fixed copy of an environment.
type Snapshot map[string]string

// SnapshotOf parses KEY=VALUE entries such as those from os.Environ.
// Entries without '=' are skipped; a later duplicate wins.
func SnapshotOf(entries []string) Snapshot {
	s := make(Snapshot, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok || k == "" {
			continue
		}
		s[k] = v
	}
	return s
}

func (s Snapshot) LookupEnv(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}
