package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
	"github.com/ruminaider/chipfilter/internal/chips"
	"github.com/ruminaider/chipfilter/internal/config"
	"github.com/ruminaider/chipfilter/internal/dataset"
	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config and sample records",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil && !initForce {
			if !term.IsTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("config already exists at %s\nUse --force to overwrite it", configPath)
			}
			overwrite := false
			err := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Overwrite %s?", configPath)).
						Affirmative("Overwrite").
						Negative("Cancel").
						Value(&overwrite),
				),
			).Run()
			if err != nil {
				return err
			}
			if !overwrite {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
		}

		written, err := writeStarter(configPath)
		if err != nil {
			return err
		}
		for _, path := range written {
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run 'chipfilter' to start filtering.")
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config without asking")
}

// writeStarter writes the starter config to cfgPath and the sample records
// next to it. An existing record file is left alone.
func writeStarter(cfgPath string) ([]string, error) {
	cfg := config.Starter()
	if err := config.Save(cfgPath, cfg); err != nil {
		return nil, err
	}
	written := []string{cfgPath}

	recordsPath := cfg.DataPath(cfgPath)
	if _, err := os.Stat(recordsPath); err == nil {
		return written, nil
	}
	if err := writeRecords(recordsPath, sampleRecords()); err != nil {
		return nil, err
	}
	return append(written, recordsPath), nil
}

// writeRecords writes records to path as JSON. A failed close is reported,
// since it can mean the data never reached the disk.
func writeRecords(path string, records []chips.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	if err := dataset.Write(f, records, dataset.FormatJSON); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func sampleRecords() []chips.Record {
	return []chips.Record{
		{"id": 1, "name": "Wireless Headphones", "category": "Electronics", "price": 99.99, "tags": []any{"wireless", "bluetooth"}, "inStock": true},
		{"id": 2, "name": "Gaming Mouse", "category": "Electronics", "price": 59.99, "tags": []any{"gaming", "rgb", "wireless"}, "inStock": true},
		{"id": 3, "name": "Mechanical Keyboard", "category": "Electronics", "price": 129.99, "tags": []any{"mechanical", "rgb", "gaming"}, "inStock": false},
		{"id": 4, "name": "Laptop Stand", "category": "Accessories", "price": 49.99, "tags": []any{"adjustable", "aluminum"}, "inStock": true},
		{"id": 5, "name": "USB-C Hub", "category": "Accessories", "price": 39.99, "tags": []any{"usb-c", "portable"}, "inStock": true},
		{"id": 6, "name": "Wireless Charger", "category": "Accessories", "price": 29.99, "tags": []any{"wireless", "qi"}, "inStock": false},
	}
}
