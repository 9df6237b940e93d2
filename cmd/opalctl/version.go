package main

import (
	"fmt"
	"runtime/debug"
	"strconv"
)

/*------------------------------------------------------------------
 *
 * Purpose:	Build-info version banner, in the style of a linker-set
 *		version string overridden at build time plus whatever Go
 *		itself recorded about the build (VCS revision, dirty
 *		working tree).
 *
 *------------------------------------------------------------------*/

// Set at build time via `-ldflags "-X 'main.OPAL_VERSION=X'"`.
var OPAL_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key, defaultValue string) string {
	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}
	return defaultValue
}

func printVersion(verbose bool) {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildTimeStr = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")
	var buildCommit = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
	var buildDirtyStr = getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")

	var buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = OPAL_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	fmt.Printf("opalctl - Version %s (revision %s, built at %s)\n", version, buildCommit, buildTimeStr)

	if verbose && buildInfo != nil {
		fmt.Printf("\nBuildInfo: %+v\n", buildInfo)
	}
}
