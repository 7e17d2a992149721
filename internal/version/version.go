// internal/version/version.go
package version

// Version is the cmsift release string. Overridable at build time with
// -ldflags "-X cmsift/internal/version.Version=...".
var Version = "0.2.0"
