package http_test

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("AccountHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = newTestRouter()
	})

	register := func(name, email, password string) {
		w := perform(router, http.MethodPost, "/api/register",
			`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
		ExpectWithOffset(1, w.Code).To(Equal(http.StatusCreated), w.Body.String())
	}

	Describe("POST /api/register", func() {
		It("cria o usuário e nunca devolve a senha", func() {
			w := perform(router, http.MethodPost, "/api/register",
				`{"name":"bob","email":"Bob@X.com","password":"pw1"}`)

			Expect(w.Code).To(Equal(http.StatusCreated))
			body := decodeObject(w)
			Expect(body["success"]).To(BeTrue())
			Expect(body["message"]).To(Equal("registered successfully"))

			user := body["user"].(map[string]any)
			Expect(user["id"]).To(BeEquivalentTo(1))
			Expect(user["name"]).To(Equal("bob"))
			Expect(user["email"]).To(Equal("bob@x.com"))
			Expect(w.Body.String()).NotTo(ContainSubstring("password"))
		})

		It("devolve 409 para nome ou email repetido", func() {
			register("bob", "bob@x.com", "pw1")

			w := perform(router, http.MethodPost, "/api/register",
				`{"name":"bob","email":"other@x.com","password":"pw2"}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
			body := decodeObject(w)
			Expect(body["success"]).To(BeFalse())
			Expect(body["message"]).To(Equal("username or email already exists"))
			Expect(body["status"]).To(BeEquivalentTo(http.StatusConflict))
			Expect(body["type"]).To(Equal("http://localhost:5000/problems/conflict"))
			Expect(body["instance"]).To(Equal("/api/register"))
		})

		DescribeTable("devolve 400 quando falta campo",
			func(payload string) {
				w := perform(router, http.MethodPost, "/api/register", payload)

				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(decodeObject(w)["message"]).To(Equal("name, email and password are required"))
			},
			Entry("sem senha", `{"name":"bob","email":"bob@x.com"}`),
			Entry("nome só com espaços", `{"name":"   ","email":"bob@x.com","password":"pw"}`),
			Entry("objeto vazio", `{}`),
			Entry("corpo vazio", ``),
		)

		It("aceita senha multibyte com mais de 72 bytes", func() {
			long := strings.Repeat("é", 40)
			register("bob", "bob@x.com", long)

			w := perform(router, http.MethodPost, "/api/login", `{"name":"bob","password":"`+long+`"}`)
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("devolve 400 para JSON malformado", func() {
			w := perform(router, http.MethodPost, "/api/register", `{"name":`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeObject(w)["message"]).To(Equal("request body must be a JSON object"))
		})
	})

	Describe("POST /api/login", func() {
		BeforeEach(func() {
			register("bob", "bob@x.com", "pw1")
		})

		It("autentica e devolve user_id", func() {
			w := perform(router, http.MethodPost, "/api/login", `{"name":"bob","password":"pw1"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			body := decodeObject(w)
			Expect(body["message"]).To(Equal("login successful"))
			Expect(body["user_id"]).To(BeEquivalentTo(1))
		})

		DescribeTable("devolve 401 com a mesma mensagem",
			func(payload string) {
				w := perform(router, http.MethodPost, "/api/login", payload)

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(decodeObject(w)["message"]).To(Equal("either username or password is wrong"))
			},
			Entry("senha errada", `{"name":"bob","password":"nope"}`),
			Entry("usuário desconhecido", `{"name":"alice","password":"pw1"}`),
		)

		It("devolve 400 sem senha", func() {
			w := perform(router, http.MethodPost, "/api/login", `{"name":"bob"}`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeObject(w)["message"]).To(Equal("name and password are required"))
		})
	})

	Describe("GET /api/users/:id", func() {
		It("devolve o usuário", func() {
			register("bob", "bob@x.com", "pw1")

			w := perform(router, http.MethodGet, "/api/users/1", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decodeObject(w)["user"]).To(HaveKeyWithValue("name", "bob"))
		})

		It("devolve 404 para id inexistente ou não numérico", func() {
			Expect(perform(router, http.MethodGet, "/api/users/42", "").Code).To(Equal(http.StatusNotFound))
			Expect(perform(router, http.MethodGet, "/api/users/abc", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("PUT /api/users/:id", func() {
		BeforeEach(func() {
			register("bob", "bob@x.com", "pw1")
			register("carol", "carol@x.com", "pw2")
		})

		It("altera email e senha", func() {
			w := perform(router, http.MethodPut, "/api/users/1", `{"email":"Bobby@X.com","password":"new"}`)

			Expect(w.Code).To(Equal(http.StatusOK))
			body := decodeObject(w)
			Expect(body["message"]).To(Equal("user updated successfully"))
			Expect(body["user"]).To(HaveKeyWithValue("email", "bobby@x.com"))

			login := perform(router, http.MethodPost, "/api/login", `{"name":"bob","password":"new"}`)
			Expect(login.Code).To(Equal(http.StatusOK))
		})

		It("troca para senha multibyte com mais de 72 bytes", func() {
			long := strings.Repeat("é", 40)

			w := perform(router, http.MethodPut, "/api/users/1", `{"password":"`+long+`"}`)
			Expect(w.Code).To(Equal(http.StatusOK))

			login := perform(router, http.MethodPost, "/api/login", `{"name":"bob","password":"`+long+`"}`)
			Expect(login.Code).To(Equal(http.StatusOK))
		})

		It("devolve 409 para nome de outro usuário", func() {
			w := perform(router, http.MethodPut, "/api/users/1", `{"name":"carol"}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decodeObject(w)["message"]).To(Equal("username already taken"))
		})

		It("devolve 409 para email de outro usuário", func() {
			w := perform(router, http.MethodPut, "/api/users/1", `{"email":"carol@x.com"}`)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(decodeObject(w)["message"]).To(Equal("email already taken"))
		})

		It("devolve 404 para usuário inexistente", func() {
			w := perform(router, http.MethodPut, "/api/users/99", `{"name":"zed"}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(decodeObject(w)["message"]).To(Equal("user not found"))
		})
	})
})
