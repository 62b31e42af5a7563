package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/harsh-simform/snapflow-desktop-sub001/annotation"
	"github.com/harsh-simform/snapflow-desktop-sub001/render"
)

func main() {
	inputName := flag.String("i", "", "background capture (png)")
	shapesName := flag.String("shapes", "", "annotation file (json)")
	outputName := flag.String("o", "", "output filename")
	scale := flag.Float64("scale", 1, "export size multiplier")
	flag.Parse()

	if err := export(*inputName, *shapesName, *outputName, *scale); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func export(inputName, shapesName, outputName string, scale float64) error {
	if inputName == "" {
		return fmt.Errorf("missing input file")
	}
	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + "-annotated.png"
	}

	file, err := os.Open(inputName)
	if err != nil {
		return err
	}
	defer file.Close()

	background, err := png.Decode(file)
	if err != nil {
		return fmt.Errorf("can't decode background: %w", err)
	}

	var shapes []annotation.Shape
	if shapesName != "" {
		data, err := os.ReadFile(shapesName)
		if err != nil {
			return err
		}
		shapes, err = annotation.UnmarshalShapes(data)
		if err != nil {
			return fmt.Errorf("can't parse annotations: %w", err)
		}
	}

	flat, err := render.Flatten(background, shapes, scale)
	if err != nil {
		return err
	}
	data, err := render.EncodePNG(flat)
	if err != nil {
		return err
	}

	return os.WriteFile(outputName, data, 0o644)
}
