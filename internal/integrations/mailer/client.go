package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client клиент для отправки писем через SendGrid
type Client struct {
	sg        *sendgrid.Client
	fromName  string
	fromEmail string
	enabled   bool
	log       Logger
}

// NewClient создает новый экземпляр почтового клиента
// При пустом API-ключе клиент работает в выключенном режиме: письма логируются, но не отправляются
func NewClient(apiKey, fromName, fromEmail string, log Logger) *Client {
	return &Client{
		sg:        sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
		enabled:   apiKey != "",
		log:       log,
	}
}

// SendPasswordResetCode отправляет одноразовый код восстановления пароля
func (c *Client) SendPasswordResetCode(ctx context.Context, toEmail, code string, ttlMinutes int) error {
	subject := "Код восстановления пароля"
	body := fmt.Sprintf(
		"Ваш код для восстановления пароля: %s\n\nКод действителен %d минут. Если вы не запрашивали восстановление, проигнорируйте это письмо.",
		code, ttlMinutes,
	)

	return c.send(ctx, toEmail, subject, body)
}

// SendBookingStatusUpdate уведомляет пользователя об изменении статуса бронирования
func (c *Client) SendBookingStatusUpdate(ctx context.Context, toEmail, fieldName, status, window string) error {
	subject := "Обновление статуса бронирования"
	body := fmt.Sprintf(
		"Статус вашего бронирования поля «%s» на %s изменен: %s.",
		fieldName, window, status,
	)

	return c.send(ctx, toEmail, subject, body)
}

func (c *Client) send(ctx context.Context, toEmail, subject, body string) error {
	if !c.enabled {
		c.log.Info("Mailer disabled, skipping email to=%s subject=%q", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := c.sg.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: to=%s: %v", ErrSendFailed, toEmail, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: to=%s, status=%d, body=%s", ErrSendFailed, toEmail, resp.StatusCode, resp.Body)
	}

	c.log.Info("Email sent to=%s subject=%q", toEmail, subject)

	return nil
}
