package version

// Version es la versión actual de MateNotes
// Esta versión debe actualizarse en cada release
const Version = "0.2.0"

// FullVersion retorna la versión con el prefijo v
func FullVersion() string {
	return "v" + Version
}
