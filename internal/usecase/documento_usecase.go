package usecase

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"
	"gestion_oficina/pkg/clock"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrInvalidArchivo = fmt.Errorf("archivoBase64 is not valid base64: %w", entities.ErrValidation)

type DocumentoInput struct {
	ClienteID     string
	TrabajoID     string
	Nombre        string
	TipoMime      string
	Categoria     string
	ArchivoBase64 string
}

type DocumentoFilter struct {
	ClienteID string
	TrabajoID string
}

type IDocumentoUseCase interface {
	Upload(ctx context.Context, in DocumentoInput) (entities.Documento, error)
	GetByID(ctx context.Context, id string) (entities.Documento, error)
	Download(ctx context.Context, id string) (entities.Documento, []byte, error)
	List(ctx context.Context, f DocumentoFilter) ([]entities.Documento, error)
	Delete(ctx context.Context, id string) error
}

// DocumentoUseCase stores contents in the blob store when one is configured
// and inline (base64) otherwise.
type DocumentoUseCase struct {
	repo     interfaces.IDocumentoRepository
	clientes interfaces.IClienteRepository
	trabajos interfaces.ITrabajoRepository
	blobs    interfaces.IBlobStore
	maxBytes int64
	clock    clock.Clock
	logger   logrus.FieldLogger
}

var _ IDocumentoUseCase = (*DocumentoUseCase)(nil)

// NewDocumentoUseCase accepts a nil blobs for inline storage.
func NewDocumentoUseCase(repo interfaces.IDocumentoRepository, clientes interfaces.IClienteRepository, trabajos interfaces.ITrabajoRepository, blobs interfaces.IBlobStore, maxBytes int64, clk clock.Clock, logger logrus.FieldLogger) *DocumentoUseCase {
	return &DocumentoUseCase{repo: repo, clientes: clientes, trabajos: trabajos, blobs: blobs, maxBytes: maxBytes, clock: clk, logger: logger}
}

func (u *DocumentoUseCase) Upload(ctx context.Context, in DocumentoInput) (entities.Documento, error) {
	in.Nombre = strings.TrimSpace(in.Nombre)
	in.ClienteID = strings.TrimSpace(in.ClienteID)
	in.TrabajoID = strings.TrimSpace(in.TrabajoID)
	if err := checkLength("nombre", in.Nombre, 1, 255); err != nil {
		return entities.Documento{}, err
	}
	if in.TipoMime == "" {
		in.TipoMime = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(stripDataURL(in.ArchivoBase64))
	if err != nil {
		return entities.Documento{}, ErrInvalidArchivo
	}
	if len(data) == 0 {
		return entities.Documento{}, entities.NewValidationError("archivoBase64", "required")
	}
	if u.maxBytes > 0 && int64(len(data)) > u.maxBytes {
		return entities.Documento{}, entities.ErrDocumentoTooLarge
	}
	if err := u.checkOwners(ctx, &in); err != nil {
		return entities.Documento{}, err
	}

	d := entities.Documento{
		ID:          uuid.NewString(),
		ClienteID:   in.ClienteID,
		TrabajoID:   in.TrabajoID,
		Nombre:      in.Nombre,
		TipoMime:    in.TipoMime,
		Tamano:      int64(len(data)),
		Categoria:   strings.TrimSpace(in.Categoria),
		FechaSubida: u.clock.Now().UTC(),
	}
	if u.blobs != nil {
		d.StorageKey = path.Join("documentos", d.ID, path.Base(d.Nombre))
		if err := u.blobs.Put(ctx, d.StorageKey, d.TipoMime, data); err != nil {
			return entities.Documento{}, err
		}
	} else {
		d.ArchivoBase64 = base64.StdEncoding.EncodeToString(data)
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		if d.StorageKey != "" {
			_ = u.blobs.Delete(ctx, d.StorageKey)
		}
		return entities.Documento{}, err
	}
	u.logger.WithFields(logrus.Fields{"documento_id": created.ID, "tamano": created.Tamano}).Info("[documento][usecase] uploaded")
	return created, nil
}

func (u *DocumentoUseCase) GetByID(ctx context.Context, id string) (entities.Documento, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Documento{}, entities.ErrInvalidID
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Documento{}, err
	}
	if d.ID == "" {
		return entities.Documento{}, entities.ErrDocumentoNotFound
	}
	return d, nil
}

func (u *DocumentoUseCase) Download(ctx context.Context, id string) (entities.Documento, []byte, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Documento{}, nil, err
	}
	if d.StorageKey != "" {
		if u.blobs == nil {
			return entities.Documento{}, nil, fmt.Errorf("documento %s is in blob storage but none is configured", d.ID)
		}
		data, err := u.blobs.Get(ctx, d.StorageKey)
		return d, data, err
	}
	data, err := base64.StdEncoding.DecodeString(d.ArchivoBase64)
	if err != nil {
		return entities.Documento{}, nil, err
	}
	return d, data, nil
}

// List never returns inline content; use Download for that.
func (u *DocumentoUseCase) List(ctx context.Context, f DocumentoFilter) ([]entities.Documento, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Documento, 0, len(all))
	for _, d := range all {
		if f.ClienteID != "" && d.ClienteID != f.ClienteID {
			continue
		}
		if f.TrabajoID != "" && d.TrabajoID != f.TrabajoID {
			continue
		}
		d.ArchivoBase64 = ""
		out = append(out, d)
	}
	return out, nil
}

func (u *DocumentoUseCase) Delete(ctx context.Context, id string) error {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, d.ID); err != nil {
		return err
	}
	if d.StorageKey != "" && u.blobs != nil {
		if err := u.blobs.Delete(ctx, d.StorageKey); err != nil {
			u.logger.WithError(err).WithField("storage_key", d.StorageKey).Warn("[documento][usecase] blob delete failed")
		}
	}
	return nil
}

// checkOwners resolves the optional cliente/trabajo links and fills the
// cliente from the trabajo when only the latter is given.
func (u *DocumentoUseCase) checkOwners(ctx context.Context, in *DocumentoInput) error {
	if in.TrabajoID != "" {
		t, err := u.trabajos.GetByID(ctx, in.TrabajoID)
		if err != nil {
			return err
		}
		if t.ID == "" {
			return entities.ErrTrabajoNotFound
		}
		if in.ClienteID == "" {
			in.ClienteID = t.ClienteID
		}
	}
	if in.ClienteID != "" {
		c, err := u.clientes.GetByID(ctx, in.ClienteID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return entities.ErrClienteNotFound
		}
	}
	return nil
}

// stripDataURL accepts "data:<mime>;base64,<payload>" as sent by browsers.
func stripDataURL(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			return s[i+1:]
		}
	}
	return s
}
