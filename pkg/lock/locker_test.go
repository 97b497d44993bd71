// Copyright (c) 2026 Benjamin Borbe All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lock_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bborbe/commit-semver/pkg/lock"
)

var _ = Describe("Locker", func() {
	var (
		ctx     context.Context
		tmpDir  string
		locker  lock.Locker
		lockErr error
	)

	BeforeEach(func() {
		ctx = context.Background()
		tmpDir = GinkgoT().TempDir()
		locker = lock.NewLocker(tmpDir)
	})

	AfterEach(func() {
		if locker != nil {
			_ = locker.Release(ctx)
		}
	})

	Describe("Acquire", func() {
		JustBeforeEach(func() {
			lockErr = locker.Acquire(ctx)
		})

		It("succeeds on first call", func() {
			Expect(lockErr).NotTo(HaveOccurred())
		})

		It("creates lock file", func() {
			lockPath := filepath.Join(tmpDir, ".commit-semver.lock")
			_, err := os.Stat(lockPath)
			Expect(err).NotTo(HaveOccurred())
		})

		It("writes PID to lock file", func() {
			lockPath := filepath.Join(tmpDir, ".commit-semver.lock")
			data, err := os.ReadFile(lockPath)
			Expect(err).NotTo(HaveOccurred())

			pidStr := strings.TrimSpace(string(data))
			pid, err := strconv.Atoi(pidStr)
			Expect(err).NotTo(HaveOccurred())
			Expect(pid).To(Equal(os.Getpid()))
		})

		Context("when lock is already held", func() {
			var secondLocker lock.Locker

			BeforeEach(func() {
				secondLocker = lock.NewLocker(tmpDir)
			})

			AfterEach(func() {
				if secondLocker != nil {
					_ = secondLocker.Release(ctx)
				}
			})

			It("fails with an error naming the holder pid", func() {
				Expect(lockErr).NotTo(HaveOccurred())

				err := secondLocker.Acquire(ctx)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("already running"))
				Expect(err.Error()).To(ContainSubstring(strconv.Itoa(os.Getpid())))
			})
		})
	})

	Describe("Release", func() {
		It("removes the lock file", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())
			Expect(locker.Release(ctx)).To(Succeed())

			lockPath := filepath.Join(tmpDir, ".commit-semver.lock")
			_, err := os.Stat(lockPath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("is a no-op when the lock was never acquired", func() {
			Expect(locker.Release(ctx)).To(Succeed())
		})

		It("allows re-acquiring after release", func() {
			Expect(locker.Acquire(ctx)).To(Succeed())
			Expect(locker.Release(ctx)).To(Succeed())

			secondLocker := lock.NewLocker(tmpDir)
			Expect(secondLocker.Acquire(ctx)).To(Succeed())
			Expect(secondLocker.Release(ctx)).To(Succeed())
		})
	})
})
