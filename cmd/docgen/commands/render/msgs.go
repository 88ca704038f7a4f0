package render

// Message constants
const (
	MsgShort = "Render a document with a style template"
	MsgLong  = `Render applies a style template to a document. A .docx input keeps its
content and structure and gets restyled in place; any other input is read as
plain text, split into title, headings, body and signature, and rebuilt from
scratch. The output extension picks the backend: .docx or .pdf.

Without --output the result lands beside the input as 格式化_<name>.docx.`

	MsgExample = `  # Restyle a document with the default template
  docgen render 通知.docx

  # Build a PDF from plain text with the formal template
  docgen render 报告.txt --template formal -o 报告.pdf

  # Tweak one setting for this render only
  docgen render 通知.docx --set document.line_spacing=2

  # Render inline text
  docgen render --text "一、标题
正文内容" -o out.docx`

	MsgRenderedFormat = "Document written to %s"

	// Error messages
	MsgErrNoInput         = "an input file or --text is required"
	MsgErrBothInputs      = "give an input file or --text, not both"
	MsgErrTextNeedsOutput = "--output is required with --text"
)
