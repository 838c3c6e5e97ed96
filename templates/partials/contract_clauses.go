package partials

// ClauseParagraph is one paragraph of a clause. Lead paragraphs hang their
// first line so the article number sits in the margin.
type ClauseParagraph struct {
	Text string
	Lead bool
}

// Clause is a titled article of the contract
type Clause struct {
	Heading    string
	Paragraphs []ClauseParagraph
}

func lead(text string) ClauseParagraph { return ClauseParagraph{Text: text, Lead: true} }
func para(text string) ClauseParagraph { return ClauseParagraph{Text: text} }

// ContractClauses is the fixed right-hand column of the document
var ContractClauses = []Clause{
	{Heading: "（業務委託）", Paragraphs: []ClauseParagraph{
		lead("第1条　甲は、標記契約要項1記載の目的に従い標記契約要項2記載の業務（以下「本業務」という。）を標記契約要項4記載の場所で行うことを乙に委託し、乙はこれを行う。"),
		para("　　2　甲乙は、相互間で別途協議し合意した本業務に関する基準・仕様等を遵守するものとする。"),
	}},
	{Heading: "（善管注意義務）", Paragraphs: []ClauseParagraph{
		lead("第2条　乙は、本業務を甲の指示に従い、善良な管理者の注意をもって行い、甲の信用を傷つける行為その他不信用な行為を一切行わない。"),
	}},
	{Heading: "（契約期間）", Paragraphs: []ClauseParagraph{
		lead("第3条　本契約の契約期間は、標記契約要項3記載の通りとする。但し、本業務は原則として標記契約要項3の但書記載のスケジュールに従って行い、定められた期間までに完了するものとする。尚、各業務において成果物の提出を要するときは、甲が行う検査の合格をもって業務の完了とし、甲が行う検査は標記契約要項5記載の期日までに完了させるものとする。"),
	}},
	{Heading: "（委託料と支払条件）", Paragraphs: []ClauseParagraph{
		lead("第4条　本業務に関する委託料は、標記契約要項6記載の通りとし、甲は乙に対し、標記契約要項7記載の支払条件に従って委託料を支払うものとする。"),
		para("　　2　委託料の支払いは、標記契約要項8記載の支払先および支払方法に従い行う。尚、振込み手数料は甲の負担とする。"),
	}},
	{Heading: "（費用）", Paragraphs: []ClauseParagraph{
		lead("第5条　本業務の実施に要する費用は全て乙の負担とする。但し、甲が負担することに別途書面で合意した費用については、甲がこれを負担する。"),
	}},
	{Heading: "（報告義務）", Paragraphs: []ClauseParagraph{
		lead("第6条　甲は、本業務の遂行に際し必要があるときは、乙に対し本業務の進捗状況などについて報告を求めることができ、乙は甲からの請求があったときは、すみやかにこれを書面にて報告する。"),
	}},
	{Heading: "（業務の実施）", Paragraphs: []ClauseParagraph{
		lead("第7条　乙は、万が一本業務の遂行を合意された期間中に完了できないことが判明した場合、期間始期の1週間前には甲にその事由を付して書面またはメールで通知し、甲の指示に従わなければならない。乙は甲の承認なく本業務を中止することはできない。"),
		para("　　2　乙は、前項の事前通知を怠り、業務を遂行しなかった場合、甲が被った損害を賠償するとともに、これとは別に、違約金として契約要項に定めた委託料の金額を甲に支払う。"),
	}},
	{Heading: "（不可抗力免責）", Paragraphs: []ClauseParagraph{
		lead("第8条　天災地変等の不可抗力、戦争・暴動・内乱、法令の改廃制定、公権力による命令処分、ストライキその他の労働争議、輸送機関の事故、その他乙の責に帰すことのできない事由（以下「不可抗力事由」という。）による本業務の全部または一部の履行遅滞または履行不能ないし不完全履行を生じた場合には、乙はそれによる損害賠償の責を負担しない。但し、乙は、不可抗力事由が本契約に及ぼす影響を最小限に止めるよう最善の努力をするものとする。"),
	}},
	{Heading: "（業務内容等の変更）", Paragraphs: []ClauseParagraph{
		lead("第9条　甲は、必要があると認めるときは、乙に通知の上、本業務の内容を追加または変更することができる。"),
		para("　　2　前項の場合において、甲および乙は協議の上、必要と認められる契約期間および委託料を変更することができる。"),
	}},
	{Heading: "（秘密保持）", Paragraphs: []ClauseParagraph{
		lead("第10条　乙は、文書、口頭その他方法のいかんを問わず、本業務の内容および業務遂行過程において知り得た営業上の情報（以下「秘密情報」という。）を第三者に漏洩・開示してはならない。"),
	}},
	{Heading: "（成果物の瑕疵）", Paragraphs: []ClauseParagraph{
		lead("第11条　甲は、成果物の交付をうけたのちにその成果物に瑕疵を発見した場合は、乙に対して、相当の期間を定めて、その瑕疵の修補を求め、または修補に代えもしくは修補とともに損害の賠償を求めることができる。"),
		para("　　2　前項による瑕疵担保責任は、引き渡しの日から5年間行使することができる。但し、甲がその瑕疵を知らなかった場合、引き渡しの日から10年間行使することができる。"),
	}},
	{Heading: "（知的財産権の帰属）", Paragraphs: []ClauseParagraph{
		lead("第12条　甲または乙が従前から有している既存の著作物の著作権で、成果物に利用されているものについては、引き続き従前から権利を有していた者に帰属するものとする。"),
		para("　　2　従前から乙に帰属する著作物で、成果物に利用されているものについては、甲および甲の関係会社はこれを無償で、かつ無期限に任意の方法で非独占的に利用することができるものとし、乙はこれを異議なく許諾する。"),
		para("3　本業務で甲のために新規に作成された成果物の著作権は、乙に帰属するものとする。"),
		para("4　前項の場合、甲および甲の関係会社はこれを無償で、かつ無期限に任意の方法で独占的に利用（加工を含む）することができるものとし、乙はこれを異議なく許諾する。"),
	}},
	{Heading: "（第三者の損害防止）", Paragraphs: []ClauseParagraph{
		lead("第13条　乙は、本業務の実施にあたり、第三者が有する知的財産権その他一切の権利を侵害しないよう、第三者に対する損害防止に留意し、自己の責任と負担で必要な措置をとらなければならない。"),
	}},
	{Heading: "（乙に生じた損害）", Paragraphs: []ClauseParagraph{
		lead("第14条　乙が本業務の遂行にあたって、乙の疾病や負傷、第三者の行為及び天災など、甲の責めに帰さない事由で乙が損害を被った場合、乙は甲に対して損害賠償請求しない。"),
		para("　　2　乙が、SNSの利用にあたって第三者と紛争が生じた場合、乙は乙の責任によって紛争を解決し、甲に対して損害賠償及び責任を請求しない。"),
	}},
	{Heading: "（権利義務の譲渡等の禁止）", Paragraphs: []ClauseParagraph{
		lead("第15条　乙は、甲の書面による事前の承諾なしに、本契約に基づく甲に対する一切の権利義務を、第三者に譲渡し、または担保の目的に供してはならない。"),
	}},
	{Heading: "（再委託）", Paragraphs: []ClauseParagraph{
		lead("第16条　乙は、甲の書面による事前の承諾なしに、本契約の一部または全部を第三者に再委託してはならない。"),
		para("　　2　前項において、甲の承諾を得て再委託する場合は、乙は当該再委託先に対し、本契約所定の乙の義務と同等の義務を負わせるものとする。"),
	}},
	{Heading: "（反社会的勢力の排除）", Paragraphs: []ClauseParagraph{
		lead("第17条　甲及び乙は、互いに相手方に対し、次の各号の事項を表明し、保証するものとする。"),
		para("（1）自ら、自らの役員・使用人・従業員等、親会社、子会社、または関連会社が、暴力団、暴力団関係企業、総会屋若しくはこれらに準ずる者またはその構成員のいずれにも該当しないこと。"),
		para("（2）反社会的勢力に自己の名義を利用させ、本契約を締結するものでないこと。"),
	}},
	{Heading: "（損害賠償）", Paragraphs: []ClauseParagraph{
		lead("第18条　乙は、本契約についての契約違反または自己の責に帰すべき事由により甲に損害を与えたときは、当該損害を賠償するものとする。"),
	}},
	{Heading: "（解除権・中止権）", Paragraphs: []ClauseParagraph{
		lead("第19条　甲は、必要によって、委託業務を中止し、または本契約を解除することができる。"),
	}},
	{Heading: "（解除に伴う措置）", Paragraphs: []ClauseParagraph{
		lead("第20条　事由名目の如何を問わず、本契約が解除された場合には、甲および乙は協議の上、委託料の清算を行う。"),
	}},
	{Heading: "（特約の同意）", Paragraphs: []ClauseParagraph{
		lead("第21条　甲および乙は、標記契約要項9記載の特約事項に同意する。"),
	}},
	{Heading: "（準拠法及び合意管轄裁判所）", Paragraphs: []ClauseParagraph{
		lead("第22条　本契約は日本法に準拠し、日本法に基づき解釈されるものとし、本契約に関し紛争が生じたときは、大阪地方裁判所を第一審の専属的合意管轄裁判所とする。"),
	}},
	{Heading: "（協議事項）", Paragraphs: []ClauseParagraph{
		lead("第23条　本契約に定めなき事項については、民法、その他の関係法規に従い、甲乙互いに誠意をもって協議する。"),
	}},
}
