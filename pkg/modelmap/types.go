// Copyright 2025 Kadir Pekel
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package modelmap loads and represents the model-map configuration file:
// the mapping from model id to upstream service address, in either of the
// two schemas described in spec.md §3 and §6, plus the chat template
// sub-map the current schema carries.
package modelmap

import (
	"fmt"
	"strconv"
	"strings"
)

// ServiceAddress is a (hostname, optional port) pair. When Port is nil the
// default upstream port supplied at channel-construction time applies.
type ServiceAddress struct {
	Hostname string
	Port     *uint16
}

// ParseServiceAddress splits a configured address string on ':'.
//
// Zero colons: the whole string is the hostname, port absent.
// One colon: the suffix must parse as a uint16, or parsing fails with a
// message naming the offending value.
// Two or more colons: always an error.
func ParseServiceAddress(raw string) (ServiceAddress, error) {
	parts := strings.Split(raw, ":")
	switch len(parts) {
	case 1:
		return ServiceAddress{Hostname: parts[0]}, nil
	case 2:
		port, err := strconv.ParseUint(parts[1], 10, 16)
		if err != nil {
			return ServiceAddress{}, fmt.Errorf("invalid port in configured service name: %s", parts[1])
		}
		p := uint16(port)
		return ServiceAddress{Hostname: parts[0], Port: &p}, nil
	default:
		return ServiceAddress{}, fmt.Errorf("configured service name contains more than one : character: %s", raw)
	}
}

// ChatTemplateSpec is the uncompiled form of a chat template, as it
// appears in the current-schema config file.
type ChatTemplateSpec struct {
	BOSToken string `yaml:"bos_token"`
	EOSToken string `yaml:"eos_token"`
	Source   string `yaml:"source"`
}

// ModelMap is the fully-decoded model map, regardless of which on-disk
// schema produced it. Legacy configs populate only Generation.
type ModelMap struct {
	Generation    map[string]ServiceAddress
	Embeddings    map[string]ServiceAddress
	ChatTemplates map[string]ChatTemplateSpec
}

// GenerationMap returns the generation sub-map if non-empty, else (nil, false).
func (m *ModelMap) GenerationMap() (map[string]ServiceAddress, bool) {
	if len(m.Generation) == 0 {
		return nil, false
	}
	return m.Generation, true
}

// EmbeddingsMap returns the embeddings sub-map if non-empty, else (nil, false).
func (m *ModelMap) EmbeddingsMap() (map[string]ServiceAddress, bool) {
	if len(m.Embeddings) == 0 {
		return nil, false
	}
	return m.Embeddings, true
}

// ChatTemplateSpecs returns the chat-template sub-map, possibly empty.
// The legacy schema has no notion of chat templates at all; per spec.md
// §9's open question, a legacy-schema map answers this with an empty
// mapping rather than refusing at startup.
func (m *ModelMap) ChatTemplateSpecs() map[string]ChatTemplateSpec {
	if m.ChatTemplates == nil {
		return map[string]ChatTemplateSpec{}
	}
	return m.ChatTemplates
}
