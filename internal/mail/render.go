package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Email is the rendered document: subject line plus HTML body
type Email struct {
	Subject string
	HTML    string
}

// Render produces the subject and body for a booking email. It is a pure
// function: identical inputs yield byte-identical output. An unknown message
// type is a programming error, not user input, and is reported as such.
func Render(m Message) (Email, error) {
	switch v := m.(type) {
	case Confirmation:
		return render(confirmationTmpl, v, fmt.Sprintf("✅ Consultoria confirmada - %s", v.ServiceName))
	case Reminder:
		subject := fmt.Sprintf("⏰ Sua consultoria é amanhã - %s", v.ServiceName)
		if v.HoursUntil == 1 {
			subject = "🔔 Sua consultoria é em 1 hora"
		}
		return render(reminderTmpl, newReminderData(v), subject)
	case Cancellation:
		return render(cancellationTmpl, v, fmt.Sprintf("❌ Consultoria cancelada - %s", v.ServiceName))
	case Reschedule:
		return render(rescheduleTmpl, v, fmt.Sprintf("📅 Consultoria reagendada - %s", v.ServiceName))
	default:
		return Email{}, fmt.Errorf("mail: unhandled message type %T", m)
	}
}

func render(tmpl *template.Template, data interface{}, subject string) (Email, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, fmt.Errorf("mail: execute template: %w", err)
	}
	return Email{Subject: subject, HTML: body.String()}, nil
}

// reminderData derives the urgency treatment from the lead time
type reminderData struct {
	Reminder
	HeaderColor template.CSS
	Headline    string
	LeadPhrase  template.HTML
	HasMeeting  bool
}

func newReminderData(r Reminder) reminderData {
	d := reminderData{
		Reminder:    r,
		HeaderColor: "#f59e0b",
		Headline:    "⏰ Sua consultoria é amanhã!",
		LeadPhrase:  "<strong>amanhã</strong>",
		HasMeeting:  r.MeetingURL != "",
	}
	if r.HoursUntil == 1 {
		d.HeaderColor = "#dc2626"
		d.Headline = "🔔 Sua consultoria é em 1 hora!"
		d.LeadPhrase = "<strong>daqui a 1 hora</strong>"
	}
	return d
}

var (
	confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))
	reminderTmpl     = template.Must(template.New("reminder").Parse(reminderHTML))
	cancellationTmpl = template.Must(template.New("cancellation").Parse(cancellationHTML))
	rescheduleTmpl   = template.Must(template.New("reschedule").Parse(rescheduleHTML))
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; line-height: 1.6; color: #334155;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #3b82f6 0%, #8b5cf6 100%); color: white; padding: 40px 30px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0; font-size: 28px;">🎉 Consultoria Confirmada!</h1>
    </div>
    <div style="background: #ffffff; padding: 40px 30px; border: 1px solid #e2e8f0; border-top: none;">
      <p style="font-size: 16px; margin-top: 0;">Olá <strong>{{.RecipientName}}</strong>,</p>
      <p style="font-size: 16px;">Sua consultoria foi confirmada com sucesso! Estamos animados para ajudá-lo a alcançar seus objetivos.</p>
      <div style="background: #f8fafc; padding: 24px; border-radius: 8px; margin: 30px 0; border-left: 4px solid #3b82f6;">
        <h2 style="margin: 0 0 16px 0; font-size: 20px; color: #1e293b;">📋 Detalhes da sessão</h2>
        <table style="width: 100%; border-collapse: collapse;">
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #475569;">Consultoria:</td>
            <td style="padding: 8px 0; text-align: right;">{{.ServiceName}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #475569;">Data:</td>
            <td style="padding: 8px 0; text-align: right; text-transform: capitalize;">{{.FormattedDate}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #475569;">Horário:</td>
            <td style="padding: 8px 0; text-align: right;">{{.FormattedTime}}</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #475569;">Duração:</td>
            <td style="padding: 8px 0; text-align: right;">{{.DurationMinutes}} minutos</td>
          </tr>
          <tr>
            <td style="padding: 8px 0; font-weight: 600; color: #475569;">ID:</td>
            <td style="padding: 8px 0; text-align: right; font-family: monospace; font-size: 12px;">{{.BookingRef}}</td>
          </tr>
        </table>
      </div>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.ConfirmationURL}}" style="display: inline-block; background: #3b82f6; color: white; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 16px;">Ver detalhes completos</a>
      </div>
      <div style="background: #fef3c7; padding: 16px; border-radius: 6px; margin: 20px 0; border-left: 4px solid #f59e0b;">
        <p style="margin: 0; font-size: 14px;"><strong>🔗 Link da reunião:</strong> Será enviado por email 24h antes da sessão.</p>
      </div>
      <h3 style="font-size: 18px; margin: 30px 0 16px 0;">✅ Como se preparar</h3>
      <ul style="padding-left: 20px; margin: 0;">
        <li style="margin-bottom: 8px;">Prepare suas principais dúvidas e objetivos</li>
        <li style="margin-bottom: 8px;">Reúna materiais relevantes (sites, campanhas, dados de desempenho)</li>
        <li style="margin-bottom: 8px;">Teste sua câmera, microfone e conexão de internet</li>
        <li style="margin-bottom: 8px;">Reserve um ambiente tranquilo e sem interrupções</li>
        <li style="margin-bottom: 8px;">Tenha papel e caneta para anotações</li>
      </ul>
      <h3 style="font-size: 18px; margin: 30px 0 16px 0;">📅 Adicionar ao calendário</h3>
      <p style="margin: 0 0 16px 0;">Não perca seu horário! Clique no botão acima para baixar o convite de calendário.</p>
      <div style="background: #f1f5f9; padding: 16px; border-radius: 6px; margin: 30px 0;">
        <p style="margin: 0; font-size: 14px;"><strong>Precisa reagendar?</strong> Entre em contato conosco até 24h antes da sessão pelo email <a href="mailto:{{.ContactEmail}}" style="color: #3b82f6;">{{.ContactEmail}}</a></p>
      </div>
    </div>
    <div style="text-align: center; padding: 30px; color: #64748b; font-size: 14px;">
      <p style="margin: 0 0 8px 0;"><strong>ARCO</strong> - Transformando desafios em resultados</p>
      <p style="margin: 0;"><a href="mailto:{{.ContactEmail}}" style="color: #3b82f6; text-decoration: none;">{{.ContactEmail}}</a></p>
    </div>
  </div>
</body>
</html>
`

const reminderHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #334155;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: {{.HeaderColor}}; color: white; padding: 40px 30px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0; font-size: 28px;">{{.Headline}}</h1>
    </div>
    <div style="background: #ffffff; padding: 40px 30px; border: 1px solid #e2e8f0; border-top: none;">
      <p style="font-size: 16px; margin-top: 0;">Olá <strong>{{.RecipientName}}</strong>,</p>
      <p style="font-size: 16px;">Este é um lembrete de que sua consultoria está agendada para {{.LeadPhrase}}.</p>
      <div style="background: #f8fafc; padding: 24px; border-radius: 8px; margin: 30px 0;">
        <h2 style="margin: 0 0 16px 0; font-size: 18px;">📋 Informações</h2>
        <p style="margin: 0 0 8px 0;"><strong>Consultoria:</strong> {{.ServiceName}}</p>
        <p style="margin: 0 0 8px 0;"><strong>Horário:</strong> {{.FormattedTime}}</p>
        <p style="margin: 0 0 8px 0;"><strong>Duração:</strong> {{.DurationMinutes}} minutos</p>
      </div>
      {{if .HasMeeting}}
      <div style="text-align: center; margin: 30px 0; padding: 20px; background: #dbeafe; border-radius: 8px;">
        <p style="margin: 0 0 16px 0; font-weight: 600;">🔗 Link da reunião:</p>
        <a href="{{.MeetingURL}}" style="display: inline-block; background: #3b82f6; color: white; padding: 14px 32px; text-decoration: none; border-radius: 6px; font-weight: 600;">Entrar na reunião</a>
      </div>
      {{end}}
      <h3 style="font-size: 18px; margin: 30px 0 16px 0;">✅ Checklist final</h3>
      <ul style="padding-left: 20px;">
        <li>✅ Câmera e microfone testados</li>
        <li>✅ Materiais preparados</li>
        <li>✅ Perguntas anotadas</li>
        <li>✅ Ambiente tranquilo reservado</li>
      </ul>
      <p style="margin: 30px 0 0 0;">Nos vemos em breve! 🚀</p>
    </div>
    <div style="text-align: center; padding: 20px; color: #64748b; font-size: 14px;">
      <p style="margin: 0;">ARCO - Transformando desafios em resultados</p>
    </div>
  </div>
</body>
</html>
`

const cancellationHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: system-ui; line-height: 1.6; color: #334155;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: #ef4444; color: white; padding: 30px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0;">❌ Consultoria Cancelada</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e2e8f0; border-top: none;">
      <p>Olá <strong>{{.RecipientName}}</strong>,</p>
      <p>Sua consultoria <strong>{{.ServiceName}}</strong> agendada para <strong>{{.FormattedDate}}</strong> às <strong>{{.FormattedTime}}</strong> foi cancelada.</p>
      <p><strong>Motivo:</strong> {{.Reason}}</p>
      <p>Se você tiver alguma dúvida ou gostaria de reagendar, entre em contato conosco.</p>
    </div>
  </div>
</body>
</html>
`

const rescheduleHTML = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: system-ui; line-height: 1.6; color: #334155;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #8b5cf6 0%, #6366f1 100%); color: white; padding: 30px; border-radius: 8px 8px 0 0; text-align: center;">
      <h1 style="margin: 0;">📅 Consultoria Reagendada</h1>
    </div>
    <div style="background: #ffffff; padding: 30px; border: 1px solid #e2e8f0; border-top: none;">
      <p>Olá <strong>{{.RecipientName}}</strong>,</p>
      <p>Sua consultoria <strong>{{.ServiceName}}</strong> foi reagendada com sucesso!</p>
      <p><strong>Nova data:</strong> {{.FormattedDate}}<br><strong>Novo horário:</strong> {{.FormattedTime}}</p>
      <div style="text-align: center; margin: 30px 0;">
        <a href="{{.ConfirmationURL}}" style="display: inline-block; background: #8b5cf6; color: white; padding: 14px 32px; text-decoration: none; border-radius: 6px;">Ver detalhes</a>
      </div>
    </div>
  </div>
</body>
</html>
`
