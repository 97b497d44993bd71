// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/config"
)

var _ = Describe("Config", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Defaults", func() {
		It("returns config with default values", func() {
			cfg := config.Defaults()
			Expect(cfg.MessagesDir).To(Equal("messages"))
			Expect(cfg.CompletedDir).To(Equal("messages/completed"))
			Expect(cfg.DebounceMs).To(Equal(500))
			Expect(cfg.ServerPort).To(Equal(8080))
			Expect(cfg.InitialVersion).To(Equal("v0.1.0"))
		})

		It("default config is valid", func() {
			Expect(config.Defaults().Validate(ctx)).To(BeNil())
		})
	})

	Describe("Validate", func() {
		var cfg config.Config

		BeforeEach(func() {
			cfg = config.Defaults()
		})

		It("succeeds for valid config", func() {
			Expect(cfg.Validate(ctx)).To(BeNil())
		})

		It("fails for empty messagesDir", func() {
			cfg.MessagesDir = ""
			err := cfg.Validate(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("messagesDir"))
		})

		It("fails for empty completedDir", func() {
			cfg.CompletedDir = ""
			err := cfg.Validate(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("completedDir"))
		})

		It("fails for non positive debounceMs", func() {
			cfg.DebounceMs = 0
			err := cfg.Validate(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("debounceMs"))
		})

		It("fails for out of range serverPort", func() {
			cfg.ServerPort = 99999
			err := cfg.Validate(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("serverPort"))
		})

		It("fails for unparsable initialVersion", func() {
			cfg.InitialVersion = "1.0"
			err := cfg.Validate(ctx)
			Expect(err).NotTo(BeNil())
			Expect(err.Error()).To(ContainSubstring("initialVersion"))
		})
	})

	Describe("Loader", func() {
		var tmpDir string

		BeforeEach(func() {
			var err error
			tmpDir, err = os.MkdirTemp("", "config-test-*")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tmpDir)
		})

		It("returns defaults when the default config file does not exist", func() {
			cwd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(os.Chdir(tmpDir)).To(Succeed())
			defer func() { _ = os.Chdir(cwd) }()

			cfg, err := config.NewLoader().Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.Defaults()))
		})

		It("fails when an explicitly given config file does not exist", func() {
			loader := config.NewLoaderWithPath(filepath.Join(tmpDir, "missing.yaml"))
			_, err := loader.Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("read config file"))
		})

		It("merges partial config onto defaults", func() {
			configContent := `messagesDir: incoming
serverPort: 9090
`
			configPath := filepath.Join(tmpDir, ".commit-semver.yaml")
			err := os.WriteFile(configPath, []byte(configContent), 0600)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := config.NewLoaderWithPath(configPath).Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.MessagesDir).To(Equal("incoming"))
			Expect(cfg.ServerPort).To(Equal(9090))
			Expect(cfg.CompletedDir).To(Equal("messages/completed"))
			Expect(cfg.DebounceMs).To(Equal(500))
			Expect(cfg.InitialVersion).To(Equal("v0.1.0"))
		})

		It("keeps explicitly set values that equal zero values distinct from missing fields", func() {
			configContent := `initialVersion: v1.0.0
`
			configPath := filepath.Join(tmpDir, ".commit-semver.yaml")
			err := os.WriteFile(configPath, []byte(configContent), 0600)
			Expect(err).NotTo(HaveOccurred())

			cfg, err := config.NewLoaderWithPath(configPath).Load(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.InitialVersion).To(Equal("v1.0.0"))
			Expect(cfg.MessagesDir).To(Equal("messages"))
		})

		It("fails for invalid yaml", func() {
			configPath := filepath.Join(tmpDir, ".commit-semver.yaml")
			err := os.WriteFile(configPath, []byte("messagesDir: [unclosed"), 0600)
			Expect(err).NotTo(HaveOccurred())

			_, err = config.NewLoaderWithPath(configPath).Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("parse config file"))
		})

		It("fails validation for invalid values", func() {
			configContent := `debounceMs: -100
`
			configPath := filepath.Join(tmpDir, ".commit-semver.yaml")
			err := os.WriteFile(configPath, []byte(configContent), 0600)
			Expect(err).NotTo(HaveOccurred())

			_, err = config.NewLoaderWithPath(configPath).Load(ctx)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("validate config"))
		})
	})
})
