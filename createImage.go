// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"github.com/chromedp/chromedp"
)

// generateImage rasterizes the traced SVG in headless Chrome and writes it as
// PNG or JPEG.
func generateImage(ctx context.Context, target Target, opts Options, format string, outputWriter io.Writer) error {
	// 1. Generate SVG string first
	svgString, err := GenerateSVG(target, opts)
	if err != nil {
		return fmt.Errorf("failed to generate intermediate SVG: %w", err)
	}

	// 2. Load it through a data URI, no temp file needed
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svgString))
	logger().Debug("created data URI for SVG", "bytes", len(dataURI))

	// 3. Setup chromedp
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	// 4. Navigate and screenshot the SVG element
	var screenshotBuf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &screenshotBuf, chromedp.ByQuery),
	}

	logger().Info("running chromedp tasks (navigate and screenshot)")
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(screenshotBuf) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	// 5. Process output
	return encodeScreenshot(screenshotBuf, format, outputWriter)
}

// encodeScreenshot copies a PNG screenshot through, or re-encodes it as JPEG.
func encodeScreenshot(screenshot []byte, format string, outputWriter io.Writer) error {
	screenshotReader := bytes.NewReader(screenshot)

	switch format {
	case "png":
		if _, err := io.Copy(outputWriter, screenshotReader); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, errPng := png.Decode(screenshotReader)
		if errPng != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", errPng)
		}
		if err := jpeg.Encode(outputWriter, img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format '%s' with chromedp", format)
	}

	logger().Info("encoded image using chromedp", "format", strings.ToUpper(format))
	return nil
}
