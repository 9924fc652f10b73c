package pkgconfig

// Config abstracts the configuration source so modules never depend on a
// concrete configuration library.
type Config interface {
	GetString(key string) string
	GetInt(key string) int
	GetBool(key string) bool
	Close() error
}
