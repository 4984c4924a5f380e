package consul

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/hashicorp/consul/api"
	"github.com/mwantia/vfsname/data"
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/providers/store"
)

// Store keeps every entry as one KV pair holding the JSON encoded entry.
// Consul KV has a 512KB limit per value, so file content is not stored.
type Store struct {
	client *api.Client
	kv     *api.KV
	prefix string
}

// NewStore creates a client for the agent at address.
func NewStore(address string, cfg Config) (*Store, error) {
	clientConfig := api.DefaultConfig()
	clientConfig.Address = address
	if cfg.Token != "" {
		clientConfig.Token = cfg.Token
	}
	if cfg.Datacenter != "" {
		clientConfig.Datacenter = cfg.Datacenter
	}
	if cfg.Namespace != "" {
		clientConfig.Namespace = cfg.Namespace
	}

	client, err := api.NewClient(clientConfig)
	if err != nil {
		return nil, err
	}

	prefix := strings.Trim(cfg.Prefix, "/")
	if prefix != "" {
		prefix += "/"
	}

	return &Store{
		client: client,
		kv:     client.KV(),
		prefix: prefix,
	}, nil
}

// Name returns the identifier name defined for this store
func (*Store) Name() string {
	return "consul"
}

// Open verifies that the agent is reachable.
func (s *Store) Open(ctx context.Context) error {
	_, err := s.client.Status().LeaderWithQueryOptions((&api.QueryOptions{}).WithContext(ctx))
	return err
}

// Nothing to clean up - Consul client is stateless
func (s *Store) Close(_ context.Context) error {
	return nil
}

// buildKey maps an absolute path to its consul key.
func (s *Store) buildKey(key string) string {
	return s.prefix + strings.TrimPrefix(key, name.Separator)
}

func (s *Store) Stat(ctx context.Context, key string) (*store.Entry, error) {
	pair, _, err := s.kv.Get(s.buildKey(key), (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if pair == nil {
		return nil, data.ErrNotExist
	}

	entry := &store.Entry{}
	if err := json.Unmarshal(pair.Value, entry); err != nil {
		return nil, fmt.Errorf("failed to decode entry '%s': %w", pair.Key, err)
	}
	return entry, nil
}

func (s *Store) Create(ctx context.Context, entry *store.Entry) error {
	value, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	// A modify index of zero only writes when the key does not exist yet.
	pair := &api.KVPair{
		Key:         s.buildKey(entry.Key),
		Value:       value,
		ModifyIndex: 0,
	}
	ok, _, err := s.kv.CAS(pair, (&api.WriteOptions{}).WithContext(ctx))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", data.ErrExist, entry.Key)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.kv.Delete(s.buildKey(key), (&api.WriteOptions{}).WithContext(ctx))
	return err
}

func (s *Store) List(ctx context.Context, key string) ([]string, error) {
	prefix := s.prefix
	if key != name.RootPath {
		prefix = s.buildKey(key) + name.Separator
	}

	keys, _, err := s.kv.Keys(prefix, name.Separator, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, err
	}

	children := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		child := strings.TrimSuffix(strings.TrimPrefix(k, prefix), name.Separator)
		if child == "" {
			continue
		}
		if _, dup := seen[child]; !dup {
			seen[child] = struct{}{}
			children = append(children, child)
		}
	}

	return children, nil
}
