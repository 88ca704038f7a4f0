package render

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/docgen/pkg/style"
)

// Block is one paragraph of input text together with the element category it
// renders as.
type Block struct {
	Category style.Category
	Text     string
}

var (
	// 一、 二、 十三、 and so on
	heading1Pattern = regexp.MustCompile(`^[一二三四五六七八九十百千零]+、`)
	// （一） （二） with fullwidth parentheses
	heading2Pattern = regexp.MustCompile(`^（[一二三四五六七八九十百千零]+）`)
	// 2024年6月3日
	datePattern = regexp.MustCompile(`^\d{4}年\d{1,2}月\d{1,2}日$`)
)

// sentencePunctuation disqualifies a line from being part of the signature.
const sentencePunctuation = "，。；：！？、,.;:!?"

// maxSignatureLines bounds the trailing run that can be reclassified as the
// signature: unit name, optional second line, date.
const maxSignatureLines = 3

// InferBlocks splits plain text into paragraphs and assigns each one an
// element category. The first non-blank line is the title; numbered lines in
// the 一、 and （一） styles become headings, as do markdown ## and ###
// markers; a short trailing run containing a date line becomes the
// signature; everything else is body text.
func InferBlocks(text string) []Block {
	var blocks []Block

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		if len(blocks) == 0 {
			blocks = append(blocks, Block{Category: style.CategoryTitle, Text: strings.TrimSpace(strings.TrimPrefix(line, "# "))})
			continue
		}

		blocks = append(blocks, classifyLine(line))
	}

	markSignature(blocks)
	return blocks
}

func classifyLine(line string) Block {
	switch {
	case strings.HasPrefix(line, "### "):
		return Block{Category: style.CategoryHeading2, Text: strings.TrimSpace(strings.TrimPrefix(line, "### "))}
	case strings.HasPrefix(line, "## "):
		return Block{Category: style.CategoryHeading1, Text: strings.TrimSpace(strings.TrimPrefix(line, "## "))}
	case heading1Pattern.MatchString(line):
		return Block{Category: style.CategoryHeading1, Text: line}
	case heading2Pattern.MatchString(line):
		return Block{Category: style.CategoryHeading2, Text: line}
	default:
		return Block{Category: style.CategoryBody, Text: line}
	}
}

// markSignature reclassifies a trailing run of body lines as the signature.
// The run is at most maxSignatureLines long, every line in it must look like
// a signature line, and the run as a whole must either contain a date line
// or span at least two lines. A single short closing sentence stays body
// text.
func markSignature(blocks []Block) {
	start := len(blocks)
	hasDate := false

	for i := len(blocks) - 1; i > 0 && len(blocks)-i <= maxSignatureLines; i-- {
		b := blocks[i]
		if b.Category != style.CategoryBody || !signatureLine(b.Text) {
			break
		}
		if datePattern.MatchString(b.Text) {
			hasDate = true
		}
		start = i
	}

	run := len(blocks) - start
	if run == 0 || (!hasDate && run < 2) {
		return
	}

	for i := start; i < len(blocks); i++ {
		blocks[i].Category = style.CategorySignature
	}
}

func signatureLine(s string) bool {
	if datePattern.MatchString(s) {
		return true
	}
	return utf8.RuneCountInString(s) <= 15 && !strings.ContainsAny(s, sentencePunctuation)
}
