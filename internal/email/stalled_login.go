package email

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
	"vigil/internal/common"
	"vigil/internal/tracker/models"
)

// AddressResolver maps a user identifier to an email recipient; how
// user accounts are stored is the embedding application's business,
// not this package's.
type AddressResolver func(userId string) (User, error)

var stalledLoginTemplate = template.Must(template.New("stalled-login").Parse(`
<p>A login to your account passed the password check but never completed two-step verification.</p>
<p>
	Date: {{ .LoginTime }}<br/>
	Device: {{ .DeviceName }} ({{ .DeviceType }})<br/>
	IP address: {{ .IpAddress }}
</p>
<p>If this wasn't you, your password may be compromised and should be changed immediately.</p>
`))

type stalledLoginTemplateData struct {
	LoginTime  string
	DeviceName string
	DeviceType string
	IpAddress  string
}

type NewStalledLoginNotifierOpts struct {
	Smtp   SmtpConfig
	Sender User

	// ResolveAddress retrieves the recipient for a user id
	ResolveAddress AddressResolver

	ServiceLogs chan<- common.ServiceLog
}

func NewStalledLoginNotifier(opts NewStalledLoginNotifierOpts) (*StalledLoginNotifier, error) {
	if opts.ResolveAddress == nil {
		return nil, fmt.Errorf("failed to receive an address resolver")
	}
	if opts.Sender.Address == "" {
		return nil, fmt.Errorf("failed to receive a sender address")
	}
	return &StalledLoginNotifier{
		smtp:           opts.Smtp,
		sender:         opts.Sender,
		resolveAddress: opts.ResolveAddress,
		serviceLogs:    opts.ServiceLogs,
	}, nil
}

// StalledLoginNotifier emails users about login attempts that stalled
// at the two-step verification step.
type StalledLoginNotifier struct {
	smtp           SmtpConfig
	sender         User
	resolveAddress AddressResolver
	serviceLogs    chan<- common.ServiceLog
}

func (n *StalledLoginNotifier) NotifyStalledLogin(login models.PendingLogin) error {
	recipient, err := n.resolveAddress(login.UserId)
	if err != nil {
		return fmt.Errorf("failed to resolve address of user[%s]: %w", login.UserId, err)
	}

	message, err := composeStalledLoginMessage(login)
	if err != nil {
		return fmt.Errorf("failed to compose notification: %w", err)
	}

	return SendSmtp(SendSmtpOpts{
		To:          []User{recipient},
		Sender:      n.sender,
		Smtp:        n.smtp,
		Message:     message,
		ServiceLogs: n.serviceLogs,
	})
}

func composeStalledLoginMessage(login models.PendingLogin) (Message, error) {
	var body bytes.Buffer
	if err := stalledLoginTemplate.Execute(&body, stalledLoginTemplateData{
		LoginTime:  login.LoginTime.UTC().Format(time.RFC1123),
		DeviceName: login.DeviceName,
		DeviceType: models.DeviceTypeName(login.DeviceType),
		IpAddress:  login.IpAddress,
	}); err != nil {
		return Message{}, err
	}
	return Message{
		Title: "Unfinished two-step login on your account",
		Body:  body.Bytes(),
	}, nil
}
