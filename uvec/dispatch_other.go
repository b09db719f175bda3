//go:build !amd64 && !arm64

package uvec

func init() {
	setScalarMode()
}
