package testhelpers

import (
	"os"
	"path/filepath"
)

func LoadFixture(name string) ([]byte, error) {
	path := filepath.Join("..", "..", "testhelpers", "fixtures", name)
	return os.ReadFile(path)
}
