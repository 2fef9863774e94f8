//go:build !windows

package colorscheme

var readCurrentUserDWORD registryReader
