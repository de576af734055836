// Copyright 2026 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package registration

import (
	"context"

	"github.com/stockwise/registry-service/internal/outbox"
	"github.com/stockwise/registry-service/internal/types"
)

// StorageInterface is the subset of the storage interface the registration
// workflow needs.
type StorageInterface interface {
	GetBusinessByName(ctx context.Context, name string) (*types.Business, error)
	GetUserByEmailOrPhone(ctx context.Context, email, phone string) (*types.User, error)
	InsertBusiness(ctx context.Context, b *types.Business) (string, error)
	InsertUser(ctx context.Context, u *types.User) error
}

// ProviderInterface creates accounts at the identity provider.
type ProviderInterface interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
}

// UploaderInterface stores image payloads and returns their public URL.
type UploaderInterface interface {
	Upload(ctx context.Context, data []byte, contentType, folder, prefix string) (string, error)
}

// MirrorInterface mirrors records to the secondary document store.
type MirrorInterface interface {
	SetDocument(ctx context.Context, collection, id string, fields map[string]interface{}) error
}

// MailerInterface sends transactional email.
type MailerInterface interface {
	Send(ctx context.Context, to, subject, htmlBody string) (string, error)
}

// OutboxInterface dispatches committed best-effort follow-ups.
type OutboxInterface interface {
	Submit(task outbox.Task)
}

type ServiceInterface interface {
	Register(ctx context.Context, req *Request) (*Result, error)
}
