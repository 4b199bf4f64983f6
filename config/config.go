// Package config loads per-node cluster configuration from YAML. It owns
// the shapes process wiring needs (peer addressing, timing knobs) that
// raft.Node deliberately stays ignorant of: raft only ever sees a peer
// count, and the transport owns addressing.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// PeerConfig identifies another node in the cluster by ID and the address
// it accepts RPCs on.
type PeerConfig struct {
	ID      string `yaml:"id"`
	Address string `yaml:"address"`
}

// Duration wraps time.Duration so operators write "150ms" in YAML instead
// of a raw nanosecond integer.
type Duration struct {
	time.Duration
}

// UnmarshalYAML uses the func-based unmarshaler signature (the yaml.v2
// style), which yaml.v3 still honours alongside its *yaml.Node-based
// yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", raw, err)
	}
	d.Duration = parsed
	return nil
}

// NodeConfig is a single node's full configuration, as loaded from a YAML
// file by cmd/node.
type NodeConfig struct {
	ID      string `yaml:"id"`
	Address string `yaml:"address"`

	// ElectionTimeout is the base interval; cmd/node randomizes the
	// actual value passed to raft.NewNode within [ElectionTimeout,
	// 2*ElectionTimeout) so nodes don't time out in lockstep.
	ElectionTimeout Duration `yaml:"election_timeout"`

	// HeartbeatMin/HeartbeatMax bound the leader's randomized broadcast
	// interval. Left zero, raft.NewNode falls back to 1-6s.
	HeartbeatMin Duration `yaml:"heartbeat_min"`
	HeartbeatMax Duration `yaml:"heartbeat_max"`

	// RequestTimeout bounds how long the gRPC transport waits for a
	// single peer's response before giving up on it.
	RequestTimeout Duration `yaml:"request_timeout"`

	Peers []PeerConfig `yaml:"peers"`
}

// Load reads and parses a NodeConfig from the YAML file at path.
func Load(path string) (*NodeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg NodeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if cfg.RequestTimeout.Duration == 0 {
		cfg.RequestTimeout = Duration{2 * time.Second}
	}
	return &cfg, nil
}
