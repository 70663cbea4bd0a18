// Package bootstrap assembles the process-wide handles the API needs:
// logger, Firestore, Firebase auth, KMS, the optional NATS connection and
// the local snapshot store.
package bootstrap

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	gcpkms "cloud.google.com/go/kms/apiv1"
	"firebase.google.com/go/v4/auth"
	"github.com/nats-io/nats.go"

	"github.com/bancotempo/timebank-backend/internal/config"
	"github.com/bancotempo/timebank-backend/internal/localstate"
	"github.com/bancotempo/timebank-backend/pkg/logger"
)

type Bootstrap struct {
	Log        *slog.Logger
	Firestore  *firestore.Client
	Firebase   *auth.Client
	KMS        *gcpkms.KeyManagementClient
	NATS       *nats.Conn
	LocalState *localstate.Store
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	var err error
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewCloudRunHandler)
	bs.Firestore, err = InitFirestore(applicationCtx, cfg.ProjectID)
	if err != nil {
		return bs, err
	}
	bs.Firebase, err = InitFirebase(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.KMS, err = InitKMS(applicationCtx)
	if err != nil {
		return bs, err
	}
	bs.NATS, err = InitNATS(cfg.NATSURL)
	if err != nil {
		return bs, err
	}
	bs.LocalState, err = localstate.Open(cfg.StatePath)
	if err != nil {
		return bs, err
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.Firestore != nil {
		bs.Firestore.Close()
	}
	if bs.KMS != nil {
		bs.KMS.Close()
	}
	if bs.NATS != nil {
		bs.NATS.Close()
	}
	if bs.LocalState != nil {
		bs.LocalState.Close()
	}
}
