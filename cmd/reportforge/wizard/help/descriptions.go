package help

// HelpText contains information about a field
type HelpText struct {
	Title       string
	Description string
	Details     string
}

// Texts contains help information for all wizard fields
var Texts = map[string]HelpText{
	"name": {
		Title:       "PATIENT NAME",
		Description: "Full name as it should appear on the report.",
		Details:     "Also used for the file name: Informe_Paciente_<name>.docx. Left empty, the file is named Informe_Paciente_SinNombre.docx.",
	},
	"identity_number": {
		Title:       "IDENTITY NUMBER",
		Description: "National identity number of the patient.",
		Details: `Must have exactly 10 or 13 digits.
The message under the field updates as you type. An invalid number
blocks submission but not the Word download.`,
	},
	"birth_date": {
		Title:       "BIRTH DATE",
		Description: "Date of birth, used to compute the age.",
		Details:     "Format: YYYY-MM-DD. Cannot be after the current date. The age is shown below and is never typed in.",
	},
	"sex": {
		Title:       "SEX",
		Description: "Sex of the patient.",
		Details:     "Male or Female. Written as M/F in DICOM exports.",
	},
	"study": {
		Title:       "STUDY",
		Description: "Name of the imaging study being reported.",
		Details:     "Example: RX DE TÓRAX PA, ECOGRAFÍA ABDOMINAL",
	},
	"report": {
		Title:       "REPORT",
		Description: "Findings, one paragraph per line.",
		Details: `Every line becomes its own paragraph in the document; blank lines are kept.
Alt+Enter or Ctrl+J inserts a new line.`,
	},
	"action": {
		Title:       "ACTION",
		Description: "What to do with the report.",
		Details: `Submit: validate the identity number and record the submission.
Download: write the report files to the output directory.
Save draft: store the form as YAML to reopen it with --from.`,
	},
	"draft_path": {
		Title:       "DRAFT FILE",
		Description: "Where to save the form values.",
		Details:     "Reopen with: reportforge form --from <file>",
	},
}
