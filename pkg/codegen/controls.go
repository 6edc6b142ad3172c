package codegen

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// fieldBlock renders the FormField element for one field, indented for the
// form body.
func fieldBlock(field model.Field, key string) string {
	lines := []string{
		"<FormField",
		"  control={form.control}",
		fmt.Sprintf("  name=%q", key),
		"  render={({ field }) => (",
		"    <FormItem>",
		fmt.Sprintf("      <FormLabel>%s</FormLabel>", jsxText(field.Label)),
		"      <FormControl>",
	}
	lines = append(lines, indent(controlLines(field), "        ")...)
	lines = append(lines,
		"      </FormControl>",
		"      <FormMessage />",
		"    </FormItem>",
		"  )}",
		"/>",
	)
	return strings.Join(indent(lines, "        "), "\n")
}

// controlLines returns the input element(s) for the field's declared type.
func controlLines(field model.Field) []string {
	placeholder := jsxText(field.Placeholder)
	switch field.Type {
	case model.FieldTypeTextarea:
		return []string{fmt.Sprintf(`<Textarea placeholder="%s" {...field} />`, placeholder)}
	case model.FieldTypeFile:
		return []string{`<Input type="file" {...field} value={field.value || ""} />`}
	case model.FieldTypeLocation:
		if placeholder == "" {
			placeholder = "Enter location"
		}
		return []string{fmt.Sprintf(`<Input type="text" placeholder="%s" {...field} />`, placeholder)}
	case model.FieldTypeDatetime:
		return []string{`<Input type="datetime-local" {...field} />`}
	case model.FieldTypeSlider:
		return []string{fmt.Sprintf(
			"<Slider min={%s} max={%s} step={%s} value={[field.value]} onValueChange={(value) => field.onChange(value[0])} />",
			validation.FormatNumber(sliderMin(field)),
			validation.FormatNumber(sliderMax(field)),
			validation.FormatNumber(sliderStep(field)),
		)}
	case model.FieldTypeRadio:
		return radioLines(field)
	case model.FieldTypeCheckbox:
		return checkboxLines(field)
	case model.FieldTypeSelect:
		return selectLines(field)
	case model.FieldTypeCombobox:
		return comboboxLines(field)
	case model.FieldTypePhone:
		return []string{fmt.Sprintf(`<Input type="tel" placeholder="%s" {...field} />`, placeholder)}
	case model.FieldTypeEmail:
		return []string{fmt.Sprintf(`<Input type="email" placeholder="%s" {...field} />`, placeholder)}
	default:
		return []string{fmt.Sprintf(`<Input type="text" placeholder="%s" {...field} />`, placeholder)}
	}
}

func optionID(field model.Field, opt model.Option) string {
	return jsxText(field.ID + "-" + opt.Value)
}

func radioLines(field model.Field) []string {
	lines := []string{"<RadioGroup onValueChange={field.onChange} defaultValue={field.value}>"}
	for _, opt := range field.Options {
		id := optionID(field, opt)
		lines = append(lines,
			`  <div className="flex items-center space-x-2">`,
			fmt.Sprintf(`    <RadioGroupItem value="%s" id="%s" />`, jsxText(opt.Value), id),
			fmt.Sprintf(`    <FormLabel htmlFor="%s">%s</FormLabel>`, id, jsxText(opt.Label)),
			"  </div>",
		)
	}
	return append(lines, "</RadioGroup>")
}

func checkboxLines(field model.Field) []string {
	lines := []string{`<div className="space-y-2">`}
	for _, opt := range field.Options {
		id := optionID(field, opt)
		value := jsString(opt.Value)
		lines = append(lines,
			`  <div className="flex items-center space-x-2">`,
			fmt.Sprintf("    <Checkbox id=\"%s\" checked={field.value?.includes(%s)} onCheckedChange={(checked) => checked ? field.onChange([...(field.value ?? []), %s]) : field.onChange(field.value?.filter((value) => value !== %s))} />", id, value, value, value),
			fmt.Sprintf(`    <FormLabel htmlFor="%s">%s</FormLabel>`, id, jsxText(opt.Label)),
			"  </div>",
		)
	}
	return append(lines, "</div>")
}

func selectLines(field model.Field) []string {
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = "Select " + strings.ToLower(field.Label)
	}
	lines := []string{
		"<Select onValueChange={field.onChange} defaultValue={field.value}>",
		"  <SelectTrigger>",
		fmt.Sprintf(`    <SelectValue placeholder="%s" />`, jsxText(placeholder)),
		"  </SelectTrigger>",
		"  <SelectContent>",
	}
	for _, opt := range field.Options {
		lines = append(lines, fmt.Sprintf(`    <SelectItem value="%s">%s</SelectItem>`, jsxText(opt.Value), jsxText(opt.Label)))
	}
	return append(lines, "  </SelectContent>", "</Select>")
}

func comboboxLines(field model.Field) []string {
	placeholder := field.Placeholder
	if placeholder == "" {
		placeholder = "Select " + strings.ToLower(field.Label)
	}
	lines := []string{"<Combobox"}
	lines = append(lines, "  options={[")
	for _, opt := range field.Options {
		lines = append(lines, fmt.Sprintf("    { label: %s, value: %s },", jsString(opt.Label), jsString(opt.Value)))
	}
	lines = append(lines,
		"  ]}",
		"  value={field.value}",
		"  onChange={field.onChange}",
		fmt.Sprintf(`  placeholder="%s"`, jsxText(placeholder)),
		"/>",
	)
	return lines
}

func indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}
