package version

// Version es la versión actual de mate-chat. Se actualiza en cada release.
var Version = "0.3.0"

func FullVersion() string {
	return "v" + Version
}
