package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound                  = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado      = errors.New("usuário não encontrado. Verifique o CNPJ e nome de usuário")
	ErrCredenciaisNaoEncontradas = errors.New("credenciais não encontradas para este usuário")
	ErrSenhaIncorreta            = errors.New("senha incorreta")
	ErrEmailJaCadastrado         = errors.New("o e-mail já está cadastrado")
	ErrUsuarioProtegido          = errors.New("este usuário é o host principal do sistema e não pode ser removido")
	ErrEntradaInvalida           = errors.New("entrada inválida")
	ErrNaoAutorizado             = errors.New("não autorizado")
	ErrAcessoNegado              = errors.New("acesso negado")
	ErrConflito                  = errors.New("conflito com o estado atual")
	ErrObraFinalizada            = errors.New("a obra já está finalizada")
)
