package version

import "runtime/debug"

// Version is empty unless set at build time, e.g.
// go build -ldflags "-X github.com/vsariola/stepseq/version.Version=$(git describe --dirty)"
var Version string

// VersionOrHash is Version if it was set, otherwise the short vcs revision the
// binary was built from, suffixed with -dirty for modified trees.
var VersionOrHash = func() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	return revision(info.Settings)
}()

func revision(settings []debug.BuildSetting) string {
	var rev string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 7 {
		rev = rev[:7]
	}
	if rev != "" && dirty {
		rev += "-dirty"
	}
	return rev
}
