// Package config provides configuration types, defaults, and persistence for registrar.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/registrar/internal/log"
)

// SaveUI updates the ui section of the config file.
// This preserves comments and formatting in other sections by using yaml.Node.
func SaveUI(fs afero.Fs, configPath string, ui UIConfig) error {
	data, err := afero.ReadFile(fs, configPath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading config: %w", err)
	}

	// Parse into yaml.Node to preserve comments
	var doc yaml.Node
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parsing config: %w", err)
		}
	}

	var uiNode yaml.Node
	if err := uiNode.Encode(ui); err != nil {
		return fmt.Errorf("building ui node: %w", err)
	}

	if doc.Kind == 0 {
		// Empty or new file - create document structure
		doc = yaml.Node{
			Kind: yaml.DocumentNode,
			Content: []*yaml.Node{
				{
					Kind: yaml.MappingNode,
					Content: []*yaml.Node{
						{Kind: yaml.ScalarNode, Value: "ui"},
						&uiNode,
					},
				},
			},
		}
	} else if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		if root.Kind != yaml.MappingNode {
			return fmt.Errorf("parsing config: top level is not a mapping")
		}
		replaceKey(root, "ui", &uiNode)
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&doc); err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	_ = encoder.Close()

	if err := writeAtomic(fs, configPath, buf.Bytes()); err != nil {
		return err
	}
	log.Info(log.CatConfig, "Saved ui settings", "path", configPath,
		"clear_screen", ui.ClearScreen, "pause", ui.Pause, "color", ui.Color)
	return nil
}

// replaceKey swaps the value of key in a mapping node, appending the pair
// when the key is missing. Comments attached to the key are kept.
func replaceKey(mapping *yaml.Node, key string, value *yaml.Node) {
	for i := 0; i < len(mapping.Content)-1; i += 2 {
		if mapping.Content[i].Value == key {
			value.LineComment = mapping.Content[i+1].LineComment
			mapping.Content[i+1] = value
			return
		}
	}
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		value,
	)
}

// writeAtomic writes to a temp file in the target directory, then renames.
func writeAtomic(fs afero.Fs, configPath string, data []byte) error {
	dir := filepath.Dir(configPath)
	if err := fs.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	temp, err := afero.TempFile(fs, dir, ".registrar.yaml.tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tempPath := temp.Name()

	if _, err := temp.Write(data); err != nil {
		_ = temp.Close()
		_ = fs.Remove(tempPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := fs.Rename(tempPath, configPath); err != nil {
		_ = fs.Remove(tempPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
