package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"log"
	"strconv"
	"strings"

	"github.com/Maryncell/iabot-landing-page/internal/domain"
	"github.com/wneessen/go-mail"
)

// Client representa el cliente de correo electrónico
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
	salesTo   string
}

// NewClient crea una nueva instancia del cliente de email. salesTo es
// la casilla del equipo comercial que recibe las notificaciones.
func NewClient(host, portStr, user, password, fromName, fromEmail, salesTo string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("puerto SMTP inválido: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
		salesTo:   salesTo,
	}, nil
}

// SendEmail envía un correo electrónico
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("error al configurar remitente: %w", err)
	}

	if err := m.To(to); err != nil {
		return fmt.Errorf("error al configurar destinatario: %w", err)
	}

	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("error al crear cliente SMTP (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("error al enviar correo (host=%s port=%d user=%s): %w", c.host, c.port, c.user, err)
	}

	return nil
}

// SendContactNotification avisa al equipo comercial de una consulta
// nueva del formulario de la landing.
func (c *Client) SendContactNotification(req domain.CreateContactRequest) error {
	subject := fmt.Sprintf("Nueva consulta de %s - %s", req.Name, req.Plan)
	return c.SendEmail(c.salesTo, subject, generarHTMLContacto(req))
}

// SendLeadNotification avisa al equipo comercial de un lead capturado
// por el bot demo.
func (c *Client) SendLeadNotification(nombre, correo, vertical, scenario string) error {
	subject := fmt.Sprintf("Lead del bot demo: %s", nombre)
	return c.SendEmail(c.salesTo, subject, generarHTMLLead(nombre, correo, vertical, scenario))
}

func generarHTMLContacto(req domain.CreateContactRequest) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	sb.WriteString(`<h2 style="color: #4a4ae8;">Nueva consulta desde la landing</h2>`)
	sb.WriteString(`<table cellpadding="6">`)
	fila(&sb, "Nombre", req.Name)
	fila(&sb, "Email", req.Email)
	fila(&sb, "Teléfono", req.Phone)
	fila(&sb, "Plan de interés", req.Plan)
	if len(req.SelectedFeatures) > 0 {
		fila(&sb, "Add-ons", strings.Join(req.SelectedFeatures, ", "))
	}
	if req.TotalPrice > 0 {
		fila(&sb, "Total estimado", fmt.Sprintf("$%.2f/mes", req.TotalPrice))
	}
	sb.WriteString(`</table>`)
	if req.Message != "" {
		sb.WriteString(`<h3>Mensaje</h3><p>` + html.EscapeString(req.Message) + `</p>`)
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

func generarHTMLLead(nombre, correo, vertical, scenario string) string {
	var sb strings.Builder
	sb.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px;">`)
	sb.WriteString(`<h2 style="color: #4a4ae8;">El bot demo capturó un lead 🎉</h2>`)
	sb.WriteString(`<table cellpadding="6">`)
	fila(&sb, "Nombre", nombre)
	fila(&sb, "Email", correo)
	fila(&sb, "Rubro elegido", vertical)
	fila(&sb, "Tema explorado", scenario)
	sb.WriteString(`</table>`)
	sb.WriteString(`<p>Completó la demo guionada hasta el final: contactar cuanto antes.</p>`)
	sb.WriteString(`</div>`)
	return sb.String()
}

func fila(sb *strings.Builder, campo, valor string) {
	if valor == "" {
		return
	}
	sb.WriteString(`<tr><td style="font-weight: bold;">` + html.EscapeString(campo) +
		`</td><td>` + html.EscapeString(valor) + `</td></tr>`)
}
