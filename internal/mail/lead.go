package mail

import (
	"fmt"
	"html/template"
)

// LeadWelcome is the confirmation email sent to a freshly captured lead
type LeadWelcome struct {
	FirstName    string
	CampaignName string
	SiteURL      string
}

// LeadAlert is the internal notification about a new lead
type LeadAlert struct {
	LeadID       string
	Name         string
	Email        string
	Phone        string
	Company      string
	CampaignName string
	CampaignSlug string
	UTMSource    string
	UTMCampaign  string
	CreatedAt    string
}

// RenderLeadWelcome builds the lead-facing confirmation email
func RenderLeadWelcome(w LeadWelcome) (Email, error) {
	subject := fmt.Sprintf("%s, recebemos seu interesse! 🚀", w.FirstName)
	return render(leadWelcomeTmpl, w, subject)
}

// RenderLeadAlert builds the internal new-lead notification
func RenderLeadAlert(a LeadAlert) (Email, error) {
	campaign := a.CampaignName
	if campaign == "" {
		campaign = "Sem campanha"
	}
	subject := fmt.Sprintf("🔔 Novo Lead: %s (%s)", a.Name, campaign)
	return render(leadAlertTmpl, a, subject)
}

var (
	leadWelcomeTmpl = template.Must(template.New("lead_welcome").Parse(leadWelcomeHTML))
	leadAlertTmpl   = template.Must(template.New("lead_alert").Parse(leadAlertHTML))
)

const leadWelcomeHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); padding: 40px 20px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Bem-vindo, {{.FirstName}}! 🎉</h1>
  </div>
  <div style="background: #f8f9fa; padding: 40px 30px; border-radius: 0 0 10px 10px;">
    <p style="font-size: 16px; margin-bottom: 20px;">Obrigado pelo seu interesse em <strong>{{.CampaignName}}</strong>!</p>
    <p style="font-size: 16px; margin-bottom: 20px;">Nossa equipe já recebeu suas informações e entrará em contato via <strong>WhatsApp</strong> em até <strong>5 minutos</strong>.</p>
    <div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #667eea; margin: 30px 0;">
      <h3 style="margin-top: 0; color: #667eea;">📱 Próximos Passos:</h3>
      <ol style="margin: 0; padding-left: 20px;">
        <li>Aguarde mensagem no WhatsApp</li>
        <li>Salve nosso contato</li>
        <li>Tire todas as suas dúvidas com nosso especialista</li>
      </ol>
    </div>
    <p style="font-size: 14px; color: #666; margin-top: 30px;">Enquanto isso, aproveite para conhecer mais sobre nossas soluções em <a href="{{.SiteURL}}" style="color: #667eea; text-decoration: none;">{{.SiteURL}}</a></p>
  </div>
  <div style="text-align: center; padding: 20px; color: #999; font-size: 12px;">
    <p>ARCO Consulting • Transformando Negócios Digitalmente</p>
  </div>
</body>
</html>
`

const leadAlertHTML = `<h2>Novo Lead Capturado</h2>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Telefone:</strong> {{.Phone}}</p>{{end}}
{{if .Company}}<p><strong>Empresa:</strong> {{.Company}}</p>{{end}}
{{if .CampaignName}}<p><strong>Campanha:</strong> {{.CampaignName}} ({{.CampaignSlug}})</p>{{end}}
{{if .UTMSource}}<p><strong>UTM Source:</strong> {{.UTMSource}}</p>{{end}}
{{if .UTMCampaign}}<p><strong>UTM Campaign:</strong> {{.UTMCampaign}}</p>{{end}}
<p><strong>Lead ID:</strong> {{.LeadID}}</p>
<p><strong>Criado em:</strong> {{.CreatedAt}}</p>
`
