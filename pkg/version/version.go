// Package version derives the build identifier reported in startup logs and
// the health endpoint. Container builds inject the commit via -ldflags; local
// builds fall back to the VCS revision stamped into the binary, then "dev".
package version

import "runtime/debug"

const appName = "upscaled"

// commit is injected with
// -ldflags "-X github.com/pixelrelay/upscaled/pkg/version.commit=...".
var commit string

// Commit returns the short revision identifying this build.
func Commit() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

// Full returns "upscaled/<commit>" for log lines and user agents.
func Full() string {
	return appName + "/" + Commit()
}

func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}
