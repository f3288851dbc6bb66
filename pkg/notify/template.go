package notify

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/inepdata/surveysweep/pkg/reconcile"
	"github.com/inepdata/surveysweep/pkg/router"
)

// Content holds the run-constant pieces substituted into every body.
type Content struct {
	From           string // FCS Evaluation Team reply address
	SurveyLink     string // submission link for new Coalition Surveys
	CheatSheetLink string // data-entry cheat sheets
}

const genericContact = `If you have any questions or need help please reply to this email and a member of the FCS Evaluation Team will reach out soon.`

var staffBody = template.Must(template.New("staff").Parse(`<html>
  <head></head>
<body>
            <p>
            Hello {{.FirstName}},<br><br>

            You are receiving this email because you need to submit or update quarterly Coalition Surveys.
            Please update the entries listed in the table(s) below by <b>5:00pm {{.Deadline}}</b>.
            <ul>
              <li>Coalition Surveys are required for any Coalition in the Coordination, Coalition, or Collaboration stage of development.</li>
              <li>Use the following link to submit <b>new</b> Coalition Surveys for each Coalition listed below. <a href="{{.SurveyLink}}">{{.SurveyLink}}</a></li>
              <li>For each entry listed, please make the edit(s) displayed in the columns labeled <b>UPDATE</b> in the column heading.</li>
              <li>You can locate entries in PEARS by entering their IDs into the search filter.</li>
              <li>As a friendly reminder &ndash; following the Cheat Sheets <a href="{{.CheatSheetLink}}">[Located Here]</a>
              will help to prevent future PEARS corrections.</li>
          </ul>

          {{.CoalitionsTable}}

          {{.SurveysTable}}

            <br>{{.Contact}}<br>
            <br>Thanks and have a great day!<br>

            <br> <b> FCS Evaluation Team </b> <br>
            <a href="mailto:{{.From}}">{{.From}}</a><br>
            </p>
  </body>
</html>
`))

var formerStaffBody = template.Must(template.New("former").Parse(`<html>
  <head></head>
<body>
            <p>
            Hello DATA ENTRY SUPPORT et al,<br><br>

            The attached Excel workbook compiles Coalition entries created by former staff that require Coalition Surveys and surveys that require updates.
            Please complete the updates for each record by <b>5:00pm {{.Deadline}}</b>.
            <ul>
              <li>Use the following link to submit <b>new</b> Coalition Surveys for each Coalition listed below. <a href="{{.SurveyLink}}">{{.SurveyLink}}</a></li>
              <li>For each entry listed, please make the edit(s) written in the columns labeled <b>UPDATE</b> in the column heading.</li>
              <li>You can locate entries in PEARS by entering their IDs into the search filter.</li>
            </ul>
          {{.Contact}}

            <br>Thanks and have a great day!<br>
            <br> <b> FCS Evaluation Team </b> <br>
            <a href="mailto:{{.From}}">{{.From}}</a><br>

            </p>
  </body>
</html>
`))

var reportBody = template.Must(template.New("report").Parse(`<html>
  <head></head>
<body>
            <p>
            Hello everyone,<br><br>

            The attached report compiles the most recent round of quarterly Coalition Survey entry.
            If you have any questions, please reply to this email and a member of the FCS Evaluation Team will reach out soon.<br>

            <br>Thanks and have a great day!<br>
            <br> <b> FCS Evaluation Team </b> <br>
            <a href="mailto:{{.From}}">{{.From}}</a><br>
            </p>
  </body>
</html>
`))

var failureBody = template.Must(template.New("failure").Parse(`<html>
  <head></head>
<body>
            <p>
            The following recipients failed to receive an email:<br>
            {{.Failures}}
            </p>
  </body>
</html>
`))

// TableHTML renders a corrections table as an inline HTML table with a
// heading. An empty table renders as the empty string so a recipient with
// entries in only one module never sees a bare header grid.
func TableHTML(t reconcile.Table) template.HTML {
	if t.Empty() {
		return ""
	}

	var b strings.Builder
	b.WriteString("<h1> " + html.EscapeString(t.Name) + " </h1>")
	b.WriteString(`<table border="2"><thead><tr>`)
	for _, h := range t.Headers {
		b.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return template.HTML(b.String()) // #nosec G203 -- all cell content escaped above
}

// contactSentence returns the cc-dependent contact line: personalized
// regional-specialist text when the router escalated, generic otherwise.
func contactSentence(rec *router.Recipient) template.HTML {
	if rec.Educator == nil {
		return genericContact
	}
	e := rec.Educator
	return template.HTML(fmt.Sprintf(
		`If you have any questions or need help please contact your Regional Specialist, <b>%s</b> (<a href="mailto:%s">%s</a>).`,
		html.EscapeString(e.Name), html.EscapeString(e.Email), html.EscapeString(e.Email)))
}

// StaffNotification builds the per-recipient message. The regional
// educator, when escalated, is appended to the cc list.
func StaffNotification(rec router.Recipient, quarter, deadline string, cc []string, content Content) (Message, error) {
	data := struct {
		FirstName       string
		Deadline        string
		SurveyLink      string
		CheatSheetLink  string
		CoalitionsTable template.HTML
		SurveysTable    template.HTML
		Contact         template.HTML
		From            string
	}{
		FirstName:       rec.FirstName,
		Deadline:        deadline,
		SurveyLink:      content.SurveyLink,
		CheatSheetLink:  content.CheatSheetLink,
		CoalitionsTable: TableHTML(reconcile.CoalitionsEmailTable(rec.Coalitions)),
		SurveysTable:    TableHTML(reconcile.SurveysEmailTable(rec.Surveys)),
		Contact:         contactSentence(&rec),
		From:            content.From,
	}

	var b strings.Builder
	if err := staffBody.Execute(&b, data); err != nil {
		return Message{}, err
	}

	msg := Message{
		To:      []string{rec.Email},
		Cc:      append([]string(nil), cc...),
		Subject: fmt.Sprintf("Coalition Survey Entry %s, %s", quarter, rec.FullName),
		HTML:    b.String(),
	}
	if rec.Educator != nil {
		msg.Cc = append(msg.Cc, rec.Educator.Email)
	}
	return msg, nil
}

// FormerStaffNotification builds the combined former-staff message with
// the former-staff workbook attached.
func FormerStaffNotification(to []string, quarter, deadline, attachmentPath string, cc []string, content Content) (Message, error) {
	data := struct {
		Deadline   string
		SurveyLink string
		Contact    template.HTML
		From       string
	}{
		Deadline:   deadline,
		SurveyLink: content.SurveyLink,
		Contact:    genericContact,
		From:       content.From,
	}

	var b strings.Builder
	if err := formerStaffBody.Execute(&b, data); err != nil {
		return Message{}, err
	}

	return Message{
		To:             to,
		Cc:             append([]string(nil), cc...),
		Subject:        fmt.Sprintf("Former Staff Coalition Survey Entry %s", quarter),
		HTML:           b.String(),
		AttachmentPath: attachmentPath,
	}, nil
}

// ReportNotification builds the aggregate report message with the
// quarterly corrections workbook attached.
func ReportNotification(to []string, quarter, attachmentPath string, cc []string, content Content) (Message, error) {
	var b strings.Builder
	if err := reportBody.Execute(&b, struct{ From string }{From: content.From}); err != nil {
		return Message{}, err
	}

	return Message{
		To:             to,
		Cc:             append([]string(nil), cc...),
		Subject:        fmt.Sprintf("Quarterly Coalition Survey Entry %s", quarter),
		HTML:           b.String(),
		AttachmentPath: attachmentPath,
	}, nil
}

// FailureNotice builds the terminal notice listing every failed
// recipient, sent to the pipeline's own sender address.
func FailureNotice(to []string, quarter string, failures []Failure, cc []string) (Message, error) {
	lines := make([]string, 0, len(failures))
	for _, f := range failures {
		if f.Name != "" {
			lines = append(lines, html.EscapeString(f.Name)+" ("+html.EscapeString(f.Email)+")")
		} else {
			lines = append(lines, html.EscapeString(f.Email))
		}
	}

	var b strings.Builder
	err := failureBody.Execute(&b, struct{ Failures template.HTML }{
		Failures: template.HTML(strings.Join(lines, "<br>")),
	})
	if err != nil {
		return Message{}, err
	}

	return Message{
		To:      to,
		Cc:      append([]string(nil), cc...),
		Subject: fmt.Sprintf("Coalition Survey Entry %s Failure Notice", quarter),
		HTML:    b.String(),
	}, nil
}
