/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

// EncodePhoto writes a small solid colour JPEG to path.
func EncodePhoto(path string, fill color.Color) error {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))

	for x := range 16 {
		for y := range 16 {
			img.Set(x, y, fill)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating photo: %w", err)
	}

	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 80}); err != nil {
		file.Close()
		return fmt.Errorf("encoding photo: %w", err)
	}

	return file.Close()
}

// WritePhoto writes a photo into the current test's temporary directory and returns its path.
func WritePhoto() string {
	path := filepath.Join(ginkgo.GinkgoT().TempDir(), "cat1.jpg")

	gomega.Expect(EncodePhoto(path, color.RGBA{R: 200, G: 120, B: 40, A: 255})).To(gomega.Succeed())

	return path
}
