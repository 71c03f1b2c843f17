package utils

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

var sesClient *ses.Client

// InitMailer builds the SES client. Called once from main; reset emails are
// skipped with a log line if it was never initialized.
func InitMailer(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return fmt.Errorf("aws config load failed: %w", err)
	}
	sesClient = ses.NewFromConfig(cfg)
	return nil
}

func sendEmail(ctx context.Context, to, subject, body string) error {
	if sesClient == nil {
		slog.Warn("mailer not initialized, dropping email", "to", to, "subject", subject)
		return nil
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	if _, err := sesClient.SendEmail(ctx, input); err != nil {
		slog.Error("ses send failed", "to", to, "err", err)
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SendResetEmail delivers a forgot-password code.
func SendResetEmail(ctx context.Context, to, code string) error {
	subject := "NutriTrack password reset code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", code)
	return sendEmail(ctx, to, subject, body)
}
