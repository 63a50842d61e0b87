package storage

import (
	"os"
	"sync"

	json "github.com/goccy/go-json"

	"lifedash/internal/structures"
)

// StoreInterface is the key→JSON-blob persistence surface every feature
// writes through. Implementations must tolerate concurrent callers; callers
// must tolerate Set failures by keeping their in-memory state.
type StoreInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string)
	Keys() []string
}

// MemoryStore backs tests and ephemeral runs.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.data))
	for k := range m.data {
		out = append(out, k)
	}
	return out
}

// FileStore keeps all keys in memory and serializes the whole map to a
// single zstd-compressed JSON document on save.
type FileStore struct {
	mu         sync.RWMutex
	data       map[string]json.RawMessage
	path       string
	compressor CompressorInterface
}

func NewFileStore(conf *structures.Config, compressor CompressorInterface) *FileStore {
	return &FileStore{
		data:       make(map[string]json.RawMessage),
		path:       conf.Persistence.FilePath,
		compressor: compressor,
	}
}

func (f *FileStore) Get(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStore) Set(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = append(json.RawMessage(nil), value...)
	return nil
}

func (f *FileStore) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
}

func (f *FileStore) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.data))
	for k := range f.data {
		out = append(out, k)
	}
	return out
}

// Load replaces the in-memory map with the file's contents. A missing file
// is a fresh start, not an error; a corrupt file is discarded the same way
// and heals on the next save.
func (f *FileStore) Load() error {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(raw)
	if err != nil {
		return err
	}

	var data map[string]json.RawMessage
	if err := json.Unmarshal(decompressed, &data); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if data == nil {
		data = make(map[string]json.RawMessage)
	}
	f.data = data
	return nil
}

// Save writes the whole map atomically: tmp file, fsync, rename.
func (f *FileStore) Save() error {
	f.mu.RLock()
	jsonData, err := json.Marshal(f.data)
	f.mu.RUnlock()
	if err != nil {
		return err
	}

	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := f.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, f.path)
}

func (f *FileStore) Close() {
	f.compressor.Close()
}
