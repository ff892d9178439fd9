package version

// Version is overridden at build time with -ldflags "-X github.com/propertypro/ppai/internal/version.Version=...".
var Version = "dev"
