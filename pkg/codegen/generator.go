package codegen

import (
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/goliatone/go-formbuilder/pkg/model"
	rendertemplate "github.com/goliatone/go-formbuilder/pkg/render/template"
	gotemplate "github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

const templateName = "templates/component.tmpl"

var imports = []string{
	`import React from 'react'`,
	`import { useForm } from 'react-hook-form'`,
	`import { zodResolver } from '@hookform/resolvers/zod'`,
	`import * as z from 'zod'`,
	`import { Input } from '@/components/ui/input'`,
	`import { Textarea } from '@/components/ui/textarea'`,
	`import { Button } from '@/components/ui/button'`,
	`import { Slider } from '@/components/ui/slider'`,
	`import { RadioGroup, RadioGroupItem } from '@/components/ui/radio-group'`,
	`import { Checkbox } from '@/components/ui/checkbox'`,
	`import { Select, SelectContent, SelectItem, SelectTrigger, SelectValue } from '@/components/ui/select'`,
	`import { Combobox } from '@/components/ui/combobox'`,
	`import { Form, FormControl, FormDescription, FormField, FormItem, FormLabel, FormMessage } from '@/components/ui/form'`,
}

// Option customises a Generator.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/component.tmpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads the template bundle from disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path != "" {
			cfg.templateFS = os.DirFS(path)
		}
	}
}

// WithTemplateRenderer injects a custom template renderer.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Generator renders form component source. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs a Generator.
func New(options ...Option) (*Generator, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		if _, err := fs.Stat(cfg.templateFS, templateName); err != nil {
			return nil, fmt.Errorf("codegen: template %s: %w", templateName, err)
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("codegen: configure template renderer: %w", err)
		}
		renderer = engine
	}
	return &Generator{templates: renderer}, nil
}

// Generate returns the component source for fields laid out per selector.
// The error is only non-nil when the template itself fails to render.
func (g *Generator) Generate(fields []model.Field, selector model.Layout) (string, error) {
	keys := SchemaKeys(fields)

	schema := make([]string, len(fields))
	defaults := make([]string, len(fields))
	blocks := make([]string, len(fields))
	for i, field := range fields {
		schema[i] = fmt.Sprintf("  %s: %s,", keys[i], SchemaChain(field))
		defaults[i] = fmt.Sprintf("      %s: %s,", keys[i], DefaultValue(field))
		blocks[i] = fieldBlock(field, keys[i])
	}

	out, err := g.templates.RenderTemplate(templateName, map[string]any{
		"imports":         strings.Join(imports, "\n"),
		"schema":          strings.Join(schema, "\n"),
		"defaults":        strings.Join(defaults, "\n"),
		"fields":          strings.Join(blocks, "\n"),
		"container_class": ContainerClass(selector),
	})
	if err != nil {
		return "", fmt.Errorf("codegen: render component: %w", err)
	}
	return out, nil
}

// ContainerClass is the class list of the generated <form>. Only the
// four-column selector widens the generated form, to two columns from the
// small breakpoint; every other selector stays single column.
func ContainerClass(selector model.Layout) string {
	if selector == model.LayoutFourColumns {
		return "grid gap-4 sm:grid-cols-2"
	}
	return "grid gap-4 grid-cols-1"
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
	defaultErr  error
)

// Generate renders with a shared Generator backed by the embedded template.
func Generate(fields []model.Field, selector model.Layout) (string, error) {
	defaultOnce.Do(func() {
		defaultGen, defaultErr = New()
	})
	if defaultErr != nil {
		return "", defaultErr
	}
	return defaultGen.Generate(fields, selector)
}
