// Package environ assembles the environment handed to processes launched in
// the prefix.
package environ

import (
	"sort"

	"github.com/vertti/prefixrun/pkg/layout"
)

// Inherited lists the variables copied from the launching process when set.
// Several Android tools (am, dalvikvm) stop working without them.
var Inherited = []string{
	"PATH",
	"ANDROID_ASSETS",
	"ANDROID_DATA",
	"ANDROID_ROOT",
	"ANDROID_STORAGE",
	"EXTERNAL_STORAGE",
	"ASEC_MOUNTPOINT",
	"LOOP_MOUNTPOINT",
	"ANDROID_RUNTIME_ROOT",
	"ANDROID_ART_ROOT",
	"ANDROID_I18N_ROOT",
	"ANDROID_TZDATA_ROOT",
	"BOOTCLASSPATH",
	"DEX2OATBOOTCLASSPATH",
	"SYSTEMSERVERCLASSPATH",
}

const (
	defaultLang      = "en_US.UTF-8"
	defaultColorTerm = "truecolor"
	defaultTerm      = "xterm-256color"
)

// Builder produces the environment for a launch.
type Builder struct {
	Layout layout.Layout
	Getter EnvGetter // environment of the launching process, nil for none
}

// BuildMap returns the environment as a name to value map.
//
// In failsafe mode LD_PRELOAD is not set and PATH is only what was inherited.
func (b *Builder) BuildMap(failsafe bool) map[string]string {
	env := map[string]string{
		"HOME":      b.Layout.Home,
		"LANG":      defaultLang,
		"TMP":       b.Layout.TmpDir(),
		"TMPDIR":    b.Layout.TmpDir(),
		"COLORTERM": defaultColorTerm,
		"TERM":      defaultTerm,
	}

	for _, name := range Inherited {
		if v, ok := b.getter().LookupEnv(name); ok {
			env[name] = v
		}
	}

	if !failsafe {
		env["LD_PRELOAD"] = b.Layout.Preload
		env["PATH"] = prefixPath(b.Layout.UsrBin(), b.getter())
	}

	return env
}

// Build returns the environment as NAME=VALUE entries sorted bytewise.
func (b *Builder) Build(failsafe bool) []string {
	return Format(b.BuildMap(failsafe))
}

// Format renders env as sorted NAME=VALUE entries.
func Format(env map[string]string) []string {
	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// prefixPath puts usrBin in front of the inherited PATH. Without an inherited
// PATH the result is usrBin alone; a set but empty PATH keeps its colon.
func prefixPath(usrBin string, g EnvGetter) string {
	inherited, ok := g.LookupEnv("PATH")
	if !ok {
		return usrBin
	}
	return usrBin + ":" + inherited
}

func (b *Builder) getter() EnvGetter {
	if b.Getter == nil {
		return Snapshot{}
	}
	return b.Getter
}
