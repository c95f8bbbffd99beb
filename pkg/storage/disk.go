package storage

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// DiskStorage keeps files under a base directory writable by the
// current process.
type DiskStorage struct {
	basePath  string
	dirs      map[string]bool
	dirsMutex sync.Mutex
}

func NewDiskStorage(basePath string) *DiskStorage {
	return &DiskStorage{
		basePath: basePath,
		dirs:     make(map[string]bool),
	}
}

func (s *DiskStorage) createDir(dir string) error {
	s.dirsMutex.Lock()
	defer s.dirsMutex.Unlock()

	if s.dirs[dir] {
		return nil
	}
	s.dirs[dir] = true
	return os.MkdirAll(dir, 0o777)
}

func (s *DiskStorage) fullPath(name string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(name))
}

func (s *DiskStorage) Save(name string, reader io.Reader) (int64, error) {
	fileName := s.fullPath(name)
	if err := s.createDir(filepath.Dir(fileName)); err != nil {
		return 0, err
	}
	file, err := os.Create(fileName)
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(file, reader)
	file.Close()
	return result, err
}

func (s *DiskStorage) Load(name string, writer io.Writer) (int64, error) {
	file, err := os.Open(s.fullPath(name))
	if err != nil {
		return 0, err
	}
	result, err := io.Copy(writer, file)
	file.Close()
	return result, err
}

func (s *DiskStorage) Delete(name string) error {
	return os.Remove(s.fullPath(name))
}
