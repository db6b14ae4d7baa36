package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/sirupsen/logrus"
)

var sesClient *ses.Client

func InitMailer() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		logrus.WithError(err).Fatal("AWS config load failed")
	}
	sesClient = ses.NewFromConfig(cfg)
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	if sesClient == nil {
		logrus.Warn("mailer not initialized, email dropped")
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

	_, err := sesClient.SendEmail(context.TODO(), input)
	if err != nil {
		logrus.WithError(err).Error("SES send failed")
		return fmt.Errorf("email send failed: %v", err)
	}
	return nil
}

// SendResetEmail mails a password reset code.
func SendResetEmail(to string, code string) error {
	subject := "MessMate Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nUse this in the app to set a new password.", code)
	return sendEmail(to, subject, body)
}

// SendFeedbackReplyEmail notifies a student that staff replied to their
// feedback.
func SendFeedbackReplyEmail(to string, original string, reply string) error {
	subject := "MessMate: reply to your feedback"
	body := fmt.Sprintf("Your feedback:\n%s\n\nStaff reply:\n%s", original, reply)
	return sendEmail(to, subject, body)
}
