package gateway

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"

	"github.com/Bima595/SIMS-PPOB-Satria-Abimanyu/internal/model"
)

// UpdateProfile submits the editable profile fields and returns the
// profile as stored by the backend after the update.
func (c *Client) UpdateProfile(ctx context.Context, token string, patch model.ProfilePatch) (*model.Profile, error) {
	env, err := c.authed(ctx, http.MethodPut, "/profile/update", token, patch)
	if err != nil {
		return nil, err
	}
	var p model.Profile
	if err := decodeData(env, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// imageData is the data field of a successful image upload.
type imageData struct {
	ProfileImage string `json:"profile_image"`
}

// UploadProfileImage sends the avatar as a multipart PUT. Images over
// MaxImageBytes are rejected with FileSizeError before any request is
// built; a payload of exactly MaxImageBytes is accepted.
func (c *Client) UploadProfileImage(ctx context.Context, token, filename string, content []byte) (string, error) {
	if token == "" {
		return "", ErrNoToken
	}
	if int64(len(content)) > MaxImageBytes {
		return "", &FileSizeError{Size: int64(len(content))}
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(content); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/profile/image", &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	env, err := c.send(req)
	if err != nil {
		return "", err
	}
	var data imageData
	if err := decodeData(env, &data); err != nil {
		return "", err
	}
	return data.ProfileImage, nil
}
