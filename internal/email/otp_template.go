package email

import (
	"bytes"
	"fmt"
	"html/template"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>OTP Email</title>
  <style>
    body { font-family: Arial, sans-serif; background-color: #f4f4f9; margin: 0; padding: 0; }
    .email-container { max-width: 600px; margin: 20px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
    .email-header { text-align: center; padding: 10px; }
    .email-header h2 { color: #c0392b; }
    .email-body { padding: 20px; color: #333333; line-height: 1.6; }
    .otp { display: inline-block; padding: 10px 20px; margin: 20px 0; font-size: 24px; font-weight: bold; color: #ffffff; background: #4caf50; border-radius: 5px; }
    .email-footer { background-color: #f4f4f9; text-align: center; padding: 10px; font-size: 12px; color: #888888; }
  </style>
</head>
<body>
  <div class="email-container">
    <div class="email-header">
      <h2>Pizza Pie</h2>
    </div>
    <div class="email-body">
      <h1>Hi there!</h1>
      <p>{{.Intro}}</p>
      <div class="otp">{{.Code}}</div>
      <p>This OTP is valid for the next <strong>{{.Validity}}</strong>.</p>
      <p>If you didn't request this, please ignore this email.</p>
      <p>Thank you,<br>Pizza Pie</p>
    </div>
    <div class="email-footer">
      <p>&copy; 2025 Pizza Pie. All rights reserved.</p>
    </div>
  </div>
</body>
</html>
`))

type otpTemplateData struct {
	Intro    string
	Code     string
	Validity string
}

// RenderOTPEmail renders the styled one-time-code email body.
func RenderOTPEmail(intro, code, validity string) (string, error) {
	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, otpTemplateData{Intro: intro, Code: code, Validity: validity})
	if err != nil {
		return "", fmt.Errorf("rendering otp email: %w", err)
	}
	return buf.String(), nil
}
