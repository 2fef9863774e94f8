//go:build windows

package colorscheme

import "golang.org/x/sys/windows/registry"

var readCurrentUserDWORD registryReader = func(path, name string) (uint64, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, path, registry.QUERY_VALUE)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(name)
	return v, err
}
