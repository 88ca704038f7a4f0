package templates

import "github.com/arthur-debert/docgen/pkg/style"

// builtins holds the template payloads. Resolve hands out clones only, so
// these literals are never exposed to mutation.
var builtins = map[style.TemplateName]style.Configuration{
	style.TemplateDefault:  defaultTemplate,
	style.TemplateFormal:   formalTemplate,
	style.TemplateAcademic: academicTemplate,
}

// defaultTemplate follows the GB/T 9704 official-document conventions
var defaultTemplate = style.Configuration{
	Document: style.DocumentSettings{
		MarginTop:    3.7,
		MarginBottom: 3.5,
		MarginLeft:   2.8,
		MarginRight:  2.6,
		LineSpacing:  style.Spacing(1.5),
		FontFamily:   "仿宋_GB2312",
		FontSize:     16,
	},
	Title:     &style.ElementStyle{FontFamily: "黑体", FontSize: 22, Bold: true, Alignment: style.AlignCenter},
	Heading1:  &style.ElementStyle{FontFamily: "黑体", FontSize: 16, Bold: true, Alignment: style.AlignLeft},
	Heading2:  &style.ElementStyle{FontFamily: "楷体_GB2312", FontSize: 15, Alignment: style.AlignLeft},
	Body:      &style.ElementStyle{FontFamily: "仿宋_GB2312", FontSize: 16, Alignment: style.AlignLeft, FirstLineIndent: intPtr(2)},
	Signature: &style.ElementStyle{FontFamily: "仿宋_GB2312", FontSize: 16, Alignment: style.AlignRight},
}

// formalTemplate is the formal business document style
var formalTemplate = style.Configuration{
	Document: style.DocumentSettings{
		MarginTop:    2.5,
		MarginBottom: 2.5,
		MarginLeft:   3.0,
		MarginRight:  2.5,
		LineSpacing:  style.Spacing(1.5),
		FontFamily:   "宋体",
		FontSize:     14,
	},
	Title:     &style.ElementStyle{FontFamily: "黑体", FontSize: 20, Bold: true, Alignment: style.AlignCenter},
	Heading1:  &style.ElementStyle{FontFamily: "黑体", FontSize: 16, Bold: true, Alignment: style.AlignLeft},
	Heading2:  &style.ElementStyle{FontFamily: "宋体", FontSize: 14, Bold: true, Alignment: style.AlignLeft},
	Body:      &style.ElementStyle{FontFamily: "宋体", FontSize: 14, Alignment: style.AlignLeft, FirstLineIndent: intPtr(2)},
	Signature: &style.ElementStyle{FontFamily: "宋体", FontSize: 14, Alignment: style.AlignRight},
}

// academicTemplate is the academic paper style
var academicTemplate = style.Configuration{
	Document: style.DocumentSettings{
		MarginTop:    2.5,
		MarginBottom: 2.5,
		MarginLeft:   3.0,
		MarginRight:  2.5,
		LineSpacing:  style.Spacing(2.0),
		FontFamily:   "宋体",
		FontSize:     12,
	},
	Title:     &style.ElementStyle{FontFamily: "黑体", FontSize: 18, Bold: true, Alignment: style.AlignCenter},
	Heading1:  &style.ElementStyle{FontFamily: "黑体", FontSize: 15, Bold: true, Alignment: style.AlignLeft},
	Heading2:  &style.ElementStyle{FontFamily: "黑体", FontSize: 14, Bold: true, Alignment: style.AlignLeft},
	Body:      &style.ElementStyle{FontFamily: "宋体", FontSize: 12, Alignment: style.AlignJustify, FirstLineIndent: intPtr(2)},
	Signature: &style.ElementStyle{FontFamily: "宋体", FontSize: 12, Alignment: style.AlignRight},
}

func intPtr(v int) *int {
	return &v
}
