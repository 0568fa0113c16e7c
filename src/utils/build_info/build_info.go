package build_info

// Set through ldflags upon build
var (
	Version   = "dev"
	BuildDate = "unknown"
)
