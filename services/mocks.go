package services

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A very basic, only partial implementation of Store.
// Enough to pass tests.
type MockStore struct {
	data map[string]string
}

func NewMockStore() *MockStore {
	ret := MockStore{
		data: map[string]string{},
	}
	return &ret
}

func (self *MockStore) Get(key string) (string, error) {
	if value, ok := self.data[key]; ok {
		return value, nil
	}
	return "", errors.Wrapf(ErrKeyNotFound, "%s", key)
}

func (self *MockStore) Set(key string, value string) error {
	self.data[key] = value
	return nil
}

func (self *MockStore) SetWithTTL(key string, value string, ttl uint64) error {
	return self.Set(key, value)
}

func (self *MockStore) GetRecursive(prefix string) ([]Node, error) {
	var keys []string
	for key := range self.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	var ret []Node
	for _, key := range keys {
		ret = append(ret, Node{Key: key, Value: self.data[key]})
	}
	return ret, nil
}
