// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/login/エンドポイントのリクエストボディを表します。
// フィールド欠落は資格情報エラー（401）として扱われるため、requiredバインディングは付けません。
type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
